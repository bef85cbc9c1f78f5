package valuation

import (
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/numeric"
)

// Breakdown is the computed financial summary of an order.
//
// Every field is recomputed from the item list on each call; nothing here is a
// source of truth and nothing is cached across mutations.

type Breakdown struct {
	ServicesSum            float64 `json:"services_sum"`
	TotalDiscount          float64 `json:"total_discount"`
	TotalAddition          float64 `json:"total_addition"`
	DiscountFromPercentage float64 `json:"discount_from_percentage"`
	AdditionFromPercentage float64 `json:"addition_from_percentage"`
	FinalTotal             float64 `json:"final_total"`
}

// ItemTotal computes one line's total: quantity x unit value - discount + addition.
//
// Negative results are legal (a discount larger than the line value) and
// propagate as-is; display layers rely on the true signed value.
func ItemTotal(it entities.ServiceItem) float64 {
	return numeric.Normalize(it.Quantity)*numeric.Normalize(it.UnitValue) -
		numeric.Normalize(it.Discount) +
		numeric.Normalize(it.Addition)
}

// Normalized accessors for the loosely typed item fields. Display layers use
// these so every rendered number went through the same seam as the totals.

func ItemQuantity(it entities.ServiceItem) float64  { return numeric.Normalize(it.Quantity) }
func ItemUnitValue(it entities.ServiceItem) float64 { return numeric.Normalize(it.UnitValue) }
func ItemDiscount(it entities.ServiceItem) float64  { return numeric.Normalize(it.Discount) }
func ItemAddition(it entities.ServiceItem) float64  { return numeric.Normalize(it.Addition) }

// Totals aggregates the item list and applies the order-level percentages.
//
// The evaluation order is fixed and must not be rearranged: rounding and
// ordering changes alter financial totals on existing records.
//
// Known quirk, kept on purpose: per-item discounts/additions are already folded
// into each item total AND are subtracted/added again here as the absolute
// TotalDiscount/TotalAddition sums. Existing records and printed documents were
// produced with this double application, so it is pinned by regression tests
// rather than corrected.
func Totals(items []entities.ServiceItem, discountPercentage, additionPercentage float64) Breakdown {
	var b Breakdown
	for _, it := range items {
		b.ServicesSum += ItemTotal(it)
		b.TotalDiscount += numeric.Normalize(it.Discount)
		b.TotalAddition += numeric.Normalize(it.Addition)
	}

	b.DiscountFromPercentage = b.ServicesSum * discountPercentage / 100
	b.AdditionFromPercentage = b.ServicesSum * additionPercentage / 100

	b.FinalTotal = b.ServicesSum -
		b.TotalDiscount - b.DiscountFromPercentage +
		b.TotalAddition + b.AdditionFromPercentage
	return b
}

// OrderTotals is a convenience over Totals for a full order record.
func OrderTotals(o entities.ServiceOrder) Breakdown {
	return Totals(o.Services, o.DiscountPercentage, o.AdditionPercentage)
}
