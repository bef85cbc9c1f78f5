package lifecycle

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

// CloneOrder builds a new-order payload from an existing order.
//
// Customer link, equipment data, items, percentages and payment method carry
// over; the lifecycle restarts from scratch: status confirmar, financial
// em_aberto, EntryDate = now, and no approval/expected/delivery dates. The
// order number is left zero for the caller to assign from the sequence.
func CloneOrder(src entities.ServiceOrder, now time.Time) entities.ServiceOrder {
	items := make([]entities.ServiceItem, len(src.Services))
	copy(items, src.Services)

	return entities.ServiceOrder{
		CustomerID: src.CustomerID,
		Status:     entities.OrderStatusConfirmar,
		Financial:  entities.FinancialEmAberto,

		Equipment:    src.Equipment,
		Brand:        src.Brand,
		Model:        src.Model,
		SerialNumber: src.SerialNumber,
		Defect:       src.Defect,
		Notes:        src.Notes,

		Services:           items,
		DiscountPercentage: src.DiscountPercentage,
		AdditionPercentage: src.AdditionPercentage,
		PaymentMethod:      src.PaymentMethod,

		EntryDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
