package lifecycle

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

// Patch is the atomic change produced by a status transition: the new status
// plus every date field the transition touches. It is applied to the stored
// record in a single persistence call; there is no intermediate state.
//
// A date field is touched when its Set flag is true; Value == nil then means
// "clear". Untouched fields keep whatever the record already holds.

type Patch struct {
	Status entities.OrderStatus

	ApprovalDate         DateChange
	DeliveryDate         DateChange
	ExpectedDeliveryDate DateChange
}

type DateChange struct {
	Set   bool
	Value *time.Time
}

func setDate(t time.Time) DateChange { return DateChange{Set: true, Value: &t} }
func clearDate() DateChange          { return DateChange{Set: true} }

// StatusPatch derives the side effects of moving order o to next at time now.
//
// There is no restrictive transition table: any status may be assigned from any
// other. The derived effects are:
//   - entering aprovado from a different status stamps ApprovalDate
//   - entering entregue from a different status stamps DeliveryDate
//   - entering confirmar (reopen) clears ApprovalDate, DeliveryDate and
//     ExpectedDeliveryDate unconditionally
//   - every other move changes the status only
func StatusPatch(o entities.ServiceOrder, next entities.OrderStatus, now time.Time) Patch {
	p := Patch{Status: next}

	switch next {
	case entities.OrderStatusConfirmar:
		p.ApprovalDate = clearDate()
		p.DeliveryDate = clearDate()
		p.ExpectedDeliveryDate = clearDate()
	case entities.OrderStatusAprovado:
		if o.Status != entities.OrderStatusAprovado {
			p.ApprovalDate = setDate(now)
		}
	case entities.OrderStatusEntregue:
		if o.Status != entities.OrderStatusEntregue {
			p.DeliveryDate = setDate(now)
		}
	}
	return p
}

// Apply merges a patch into a copy of the order and returns it. The stored
// record is written by the repository from the same patch; Apply exists so the
// caller can echo the post-transition record without a second read.
func Apply(o entities.ServiceOrder, p Patch) entities.ServiceOrder {
	o.Status = p.Status
	if p.ApprovalDate.Set {
		o.ApprovalDate = p.ApprovalDate.Value
	}
	if p.DeliveryDate.Set {
		o.DeliveryDate = p.DeliveryDate.Value
	}
	if p.ExpectedDeliveryDate.Set {
		o.ExpectedDeliveryDate = p.ExpectedDeliveryDate.Value
	}
	return o
}
