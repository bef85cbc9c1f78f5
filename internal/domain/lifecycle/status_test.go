package lifecycle

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestStatusPatch(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	entry := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("approving stamps approval date", func(t *testing.T) {
		o := entities.ServiceOrder{Status: entities.OrderStatusConfirmar, EntryDate: entry}

		p := StatusPatch(o, entities.OrderStatusAprovado, now)

		if p.Status != entities.OrderStatusAprovado {
			t.Fatalf("status = %s, want %s", p.Status, entities.OrderStatusAprovado)
		}
		if !p.ApprovalDate.Set || p.ApprovalDate.Value == nil || !p.ApprovalDate.Value.Equal(now) {
			t.Fatalf("approval date not stamped: %+v", p.ApprovalDate)
		}
		if p.DeliveryDate.Set || p.ExpectedDeliveryDate.Set {
			t.Fatalf("unrelated dates touched: %+v", p)
		}
	})

	t.Run("re-approving keeps original approval date", func(t *testing.T) {
		first := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
		o := entities.ServiceOrder{Status: entities.OrderStatusAprovado, ApprovalDate: datePtr(first)}

		p := StatusPatch(o, entities.OrderStatusAprovado, now)

		if p.ApprovalDate.Set {
			t.Fatalf("approval date restamped on no-op transition: %+v", p.ApprovalDate)
		}
	})

	t.Run("delivering stamps delivery date", func(t *testing.T) {
		o := entities.ServiceOrder{Status: entities.OrderStatusPronto}

		p := StatusPatch(o, entities.OrderStatusEntregue, now)

		if !p.DeliveryDate.Set || p.DeliveryDate.Value == nil || !p.DeliveryDate.Value.Equal(now) {
			t.Fatalf("delivery date not stamped: %+v", p.DeliveryDate)
		}
		if p.ApprovalDate.Set {
			t.Fatalf("approval date touched on delivery: %+v", p.ApprovalDate)
		}
	})

	t.Run("re-delivering keeps original delivery date", func(t *testing.T) {
		o := entities.ServiceOrder{Status: entities.OrderStatusEntregue, DeliveryDate: datePtr(now)}

		p := StatusPatch(o, entities.OrderStatusEntregue, now.Add(time.Hour))

		if p.DeliveryDate.Set {
			t.Fatalf("delivery date restamped on no-op transition: %+v", p.DeliveryDate)
		}
	})

	t.Run("reopening clears all dates", func(t *testing.T) {
		o := entities.ServiceOrder{
			Status:               entities.OrderStatusEntregue,
			ApprovalDate:         datePtr(entry),
			ExpectedDeliveryDate: datePtr(entry.AddDate(0, 0, 3)),
			DeliveryDate:         datePtr(now),
		}

		p := StatusPatch(o, entities.OrderStatusConfirmar, now)

		for name, dc := range map[string]DateChange{
			"approval": p.ApprovalDate,
			"expected": p.ExpectedDeliveryDate,
			"delivery": p.DeliveryDate,
		} {
			if !dc.Set || dc.Value != nil {
				t.Fatalf("%s date not cleared: %+v", name, dc)
			}
		}
	})

	t.Run("reopening an untouched order still clears", func(t *testing.T) {
		o := entities.ServiceOrder{Status: entities.OrderStatusReprovado}

		p := StatusPatch(o, entities.OrderStatusConfirmar, now)

		if !p.ApprovalDate.Set || !p.DeliveryDate.Set || !p.ExpectedDeliveryDate.Set {
			t.Fatalf("clears must be unconditional: %+v", p)
		}
	})

	t.Run("neutral transitions change status only", func(t *testing.T) {
		o := entities.ServiceOrder{Status: entities.OrderStatusAprovado, ApprovalDate: datePtr(entry)}

		for _, next := range []entities.OrderStatus{entities.OrderStatusPronto, entities.OrderStatusReprovado} {
			p := StatusPatch(o, next, now)
			if p.Status != next {
				t.Fatalf("status = %s, want %s", p.Status, next)
			}
			if p.ApprovalDate.Set || p.DeliveryDate.Set || p.ExpectedDeliveryDate.Set {
				t.Fatalf("dates touched on %s: %+v", next, p)
			}
		}
	})
}

func TestApply(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	expected := now.AddDate(0, 0, 5)

	o := entities.ServiceOrder{
		Status:               entities.OrderStatusAprovado,
		ApprovalDate:         datePtr(now.AddDate(0, 0, -2)),
		ExpectedDeliveryDate: datePtr(expected),
	}

	t.Run("set and clear", func(t *testing.T) {
		p := Patch{
			Status:       entities.OrderStatusEntregue,
			DeliveryDate: DateChange{Set: true, Value: &now},
		}

		got := Apply(o, p)

		if got.Status != entities.OrderStatusEntregue {
			t.Fatalf("status = %s", got.Status)
		}
		if got.DeliveryDate == nil || !got.DeliveryDate.Equal(now) {
			t.Fatalf("delivery date = %v", got.DeliveryDate)
		}
		// Untouched fields keep their values.
		if got.ApprovalDate == nil || got.ExpectedDeliveryDate == nil {
			t.Fatalf("untouched dates lost: %+v", got)
		}
	})

	t.Run("clear wipes existing value", func(t *testing.T) {
		p := Patch{
			Status:               entities.OrderStatusConfirmar,
			ApprovalDate:         DateChange{Set: true},
			DeliveryDate:         DateChange{Set: true},
			ExpectedDeliveryDate: DateChange{Set: true},
		}

		got := Apply(o, p)

		if got.ApprovalDate != nil || got.DeliveryDate != nil || got.ExpectedDeliveryDate != nil {
			t.Fatalf("dates not cleared: %+v", got)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_ = Apply(o, Patch{Status: entities.OrderStatusConfirmar, ApprovalDate: DateChange{Set: true}})
		if o.Status != entities.OrderStatusAprovado || o.ApprovalDate == nil {
			t.Fatalf("input order mutated: %+v", o)
		}
	})
}
