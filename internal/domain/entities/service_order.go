package entities

import "time"

// OrderStatus represents the technical lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The workshop flow is: confirmar -> aprovado -> pronto -> entregue, with
//     reprovado as the rejection branch and confirmar as the reopen target.
//   - The engine does not enforce a transition table; any status may be set
//     directly. What it does enforce are the date side effects (see lifecycle).

type OrderStatus string

const (
	OrderStatusConfirmar OrderStatus = "confirmar"
	OrderStatusAprovado  OrderStatus = "aprovado"
	OrderStatusPronto    OrderStatus = "pronto"
	OrderStatusEntregue  OrderStatus = "entregue"
	OrderStatusReprovado OrderStatus = "reprovado"
)

// FinancialStatus represents the billing state of an order.
//
// It is orthogonal to OrderStatus: an order can be entregue and still em_aberto,
// or confirmar and already faturado. Any value may transition to any other with
// no automatic side effects.

type FinancialStatus string

const (
	FinancialEmAberto         FinancialStatus = "em_aberto"
	FinancialPago             FinancialStatus = "pago"
	FinancialParcialmentePago FinancialStatus = "parcialmente_pago"
	FinancialDeve             FinancialStatus = "deve"
	FinancialFaturado         FinancialStatus = "faturado"
	FinancialVencido          FinancialStatus = "vencido"
	FinancialCancelado        FinancialStatus = "cancelado"
)

// ValidOrderStatus reports whether s is one of the five known technical states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusConfirmar, OrderStatusAprovado, OrderStatusPronto, OrderStatusEntregue, OrderStatusReprovado:
		return true
	}
	return false
}

// ValidFinancialStatus reports whether s is one of the seven known billing states.
func ValidFinancialStatus(s FinancialStatus) bool {
	switch s {
	case FinancialEmAberto, FinancialPago, FinancialParcialmentePago, FinancialDeve, FinancialFaturado, FinancialVencido, FinancialCancelado:
		return true
	}
	return false
}

// ServiceItem is one billable line (labor or part) inside an order.
//
// Quantity, UnitValue, Discount and Addition are stored as loosely typed values
// because persisted records mix plain numbers, numeric strings and
// high-precision decimal wrappers. The valuation package normalizes them before
// any arithmetic; the item total is always recomputed, never trusted from
// storage.

type ServiceItem struct {
	Description string `json:"description"`
	Quantity    any    `json:"quantity"`
	UnitValue   any    `json:"unit_value"`
	Discount    any    `json:"discount"`
	Addition    any    `json:"addition"`
}

// ServiceOrder is the repair ticket tracked by the workshop.
//
// Storage model (DynamoDB):
//   - PK: order_number (string-encoded sequential integer)
//
// Date semantics:
//   - EntryDate is set at creation and never cleared while the order exists.
//   - ApprovalDate / DeliveryDate are owned by the status engine: set when the
//     status genuinely enters aprovado / entregue, cleared on reopen.
//   - ExpectedDeliveryDate is user supplied and also cleared on reopen.

type ServiceOrder struct {
	OrderNumber int             `json:"order_number"`
	CustomerID  string          `json:"customer_id"`
	Status      OrderStatus     `json:"status"`
	Financial   FinancialStatus `json:"financial"`

	Equipment    string `json:"equipment"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Defect       string `json:"defect"`
	Notes        string `json:"notes"`

	Services           []ServiceItem `json:"services"`
	DiscountPercentage float64       `json:"discount_percentage"`
	AdditionPercentage float64       `json:"addition_percentage"`
	PaymentMethod      string        `json:"payment_method"`

	EntryDate            time.Time  `json:"entry_date"`
	ApprovalDate         *time.Time `json:"approval_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	DeliveryDate         *time.Time `json:"delivery_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
