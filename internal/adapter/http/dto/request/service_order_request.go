package request

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

// ServiceItemRequest mirrors one order line. Numeric fields are deliberately
// untyped: clients send plain numbers or numeric strings and the valuation
// normalizer accepts both, so the API does not reject what storage already
// contains.

type ServiceItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    any    `json:"quantity"`
	UnitValue   any    `json:"unit_value"`
	Discount    any    `json:"discount"`
	Addition    any    `json:"addition"`
}

func (r ServiceItemRequest) ToEntity() entities.ServiceItem {
	return entities.ServiceItem{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitValue:   r.UnitValue,
		Discount:    r.Discount,
		Addition:    r.Addition,
	}
}

// CreateOrderRequest opens a new service order. Status, financial status,
// order number and entry date are assigned by the server, never by the caller.

type CreateOrderRequest struct {
	CustomerID         string               `json:"customer_id" binding:"required"`
	Equipment          string               `json:"equipment" binding:"required"`
	Brand              string               `json:"brand"`
	Model              string               `json:"model"`
	SerialNumber       string               `json:"serial_number"`
	Defect             string               `json:"defect"`
	Notes              string               `json:"notes"`
	Services           []ServiceItemRequest `json:"services"`
	DiscountPercentage float64              `json:"discount_percentage"`
	AdditionPercentage float64              `json:"addition_percentage"`
	PaymentMethod      string               `json:"payment_method"`
}

func (r CreateOrderRequest) ToDraft() entities.ServiceOrder {
	items := make([]entities.ServiceItem, 0, len(r.Services))
	for _, s := range r.Services {
		items = append(items, s.ToEntity())
	}
	return entities.ServiceOrder{
		CustomerID:         r.CustomerID,
		Equipment:          r.Equipment,
		Brand:              r.Brand,
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		Defect:             r.Defect,
		Notes:              r.Notes,
		Services:           items,
		DiscountPercentage: r.DiscountPercentage,
		AdditionPercentage: r.AdditionPercentage,
		PaymentMethod:      r.PaymentMethod,
	}
}

// UpdateOrderRequest carries a partial edit: only non-nil fields are applied.

type UpdateOrderRequest struct {
	CustomerID           *string               `json:"customer_id"`
	Equipment            *string               `json:"equipment"`
	Brand                *string               `json:"brand"`
	Model                *string               `json:"model"`
	SerialNumber         *string               `json:"serial_number"`
	Defect               *string               `json:"defect"`
	Notes                *string               `json:"notes"`
	Services             *[]ServiceItemRequest `json:"services"`
	DiscountPercentage   *float64              `json:"discount_percentage"`
	AdditionPercentage   *float64              `json:"addition_percentage"`
	PaymentMethod        *string               `json:"payment_method"`
	ExpectedDeliveryDate *time.Time            `json:"expected_delivery_date"`
}

func (r UpdateOrderRequest) ToChanges() usecase.OrderChanges {
	ch := usecase.OrderChanges{
		CustomerID:           r.CustomerID,
		Equipment:            r.Equipment,
		Brand:                r.Brand,
		Model:                r.Model,
		SerialNumber:         r.SerialNumber,
		Defect:               r.Defect,
		Notes:                r.Notes,
		DiscountPercentage:   r.DiscountPercentage,
		AdditionPercentage:   r.AdditionPercentage,
		PaymentMethod:        r.PaymentMethod,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
	}
	if r.Services != nil {
		items := make([]entities.ServiceItem, 0, len(*r.Services))
		for _, s := range *r.Services {
			items = append(items, s.ToEntity())
		}
		ch.Services = &items
	}
	return ch
}

// StatusUpdateRequest sets the technical status; date side effects are derived
// server side, the caller never supplies them.

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// FinancialUpdateRequest sets the billing status. Flat update, no side effects.

type FinancialUpdateRequest struct {
	Financial string `json:"financial" binding:"required"`
}
