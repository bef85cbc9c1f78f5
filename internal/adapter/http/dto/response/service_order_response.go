package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/lifecycle"
	"oficina_xpto/internal/domain/valuation"
)

type ServiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitValue   float64 `json:"unit_value"`
	Discount    float64 `json:"discount"`
	Addition    float64 `json:"addition"`
	Total       float64 `json:"total"`
}

type ServiceOrderResponse struct {
	OrderNumber int    `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	Financial   string `json:"financial"`

	Equipment    string `json:"equipment"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Defect       string `json:"defect,omitempty"`
	Notes        string `json:"notes,omitempty"`

	Services           []ServiceItemResponse `json:"services"`
	DiscountPercentage float64               `json:"discount_percentage"`
	AdditionPercentage float64               `json:"addition_percentage"`
	PaymentMethod      string                `json:"payment_method,omitempty"`

	EntryDate            time.Time  `json:"entry_date"`
	ApprovalDate         *time.Time `json:"approval_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	DeliveryDate         *time.Time `json:"delivery_date,omitempty"`

	Totals valuation.Breakdown `json:"totals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromServiceOrder maps an order to its API shape. Item totals and the order
// breakdown are recomputed here on every read; the response never echoes a
// stored total.
func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]ServiceItemResponse, 0, len(o.Services))
	for _, s := range o.Services {
		items = append(items, fromServiceItem(s))
	}

	return ServiceOrderResponse{
		OrderNumber:          o.OrderNumber,
		CustomerID:           o.CustomerID,
		Status:               string(o.Status),
		Financial:            string(o.Financial),
		Equipment:            o.Equipment,
		Brand:                o.Brand,
		Model:                o.Model,
		SerialNumber:         o.SerialNumber,
		Defect:               o.Defect,
		Notes:                o.Notes,
		Services:             items,
		DiscountPercentage:   o.DiscountPercentage,
		AdditionPercentage:   o.AdditionPercentage,
		PaymentMethod:        o.PaymentMethod,
		EntryDate:            o.EntryDate,
		ApprovalDate:         o.ApprovalDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		DeliveryDate:         o.DeliveryDate,
		Totals:               valuation.OrderTotals(o),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func fromServiceItem(s entities.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		Description: s.Description,
		Quantity:    valuation.ItemQuantity(s),
		UnitValue:   valuation.ItemUnitValue(s),
		Discount:    valuation.ItemDiscount(s),
		Addition:    valuation.ItemAddition(s),
		Total:       valuation.ItemTotal(s),
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type TimelineEventResponse struct {
	Kind        string               `json:"kind"`
	Label       string               `json:"label"`
	Date        *time.Time           `json:"date,omitempty"`
	Pending     bool                 `json:"pending"`
	Description string               `json:"description"`
	ElapsedDays int                  `json:"elapsed_days,omitempty"`
	Breakdown   *valuation.Breakdown `json:"breakdown,omitempty"`
}

func FromTimeline(events []lifecycle.Event) []TimelineEventResponse {
	out := make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, TimelineEventResponse{
			Kind:        string(e.Kind),
			Label:       e.Label,
			Date:        e.Date,
			Pending:     e.Pending,
			Description: e.Description,
			ElapsedDays: e.ElapsedDays,
			Breakdown:   e.Breakdown,
		})
	}
	return out
}
