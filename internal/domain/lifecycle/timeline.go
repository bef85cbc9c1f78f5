package lifecycle

import (
	"fmt"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valuation"
)

// EventKind identifies a timeline entry.

type EventKind string

const (
	EventEntrada    EventKind = "entrada"
	EventAprovacao  EventKind = "aprovacao"
	EventPronto     EventKind = "pronto"
	EventEntrega    EventKind = "entrega"
	EventFinanceiro EventKind = "financeiro"
)

// Event is one derived point in an order's history, reconstructed from the
// stored dates. Events are read-only summaries for display; reconstructing the
// timeline never mutates the order.

type Event struct {
	Kind        EventKind  `json:"kind"`
	Label       string     `json:"label"`
	Date        *time.Time `json:"date,omitempty"`
	Pending     bool       `json:"pending"`
	Description string     `json:"description"`

	// ElapsedDays is filled on approval/delivery events: whole days since
	// entry, rounded up.
	ElapsedDays int `json:"elapsed_days,omitempty"`

	// Breakdown is filled on the financial snapshot event.
	Breakdown *valuation.Breakdown `json:"breakdown,omitempty"`
}

// Timeline reconstructs the lifecycle events of an order in display order.
//
// The sequence is deterministic for a given record: calling it twice yields the
// same events. Totals shown on the pronto marker and the financial snapshot are
// recomputed at reconstruction time, not frozen at the moment the status
// changed.
func Timeline(o entities.ServiceOrder) []Event {
	events := make([]Event, 0, 5)

	events = append(events, Event{
		Kind:        EventEntrada,
		Label:       "Entrada",
		Date:        &o.EntryDate,
		Description: fmt.Sprintf("OS %d registrada", o.OrderNumber),
	})

	if o.ApprovalDate != nil {
		days := elapsedDays(o.EntryDate, *o.ApprovalDate)
		events = append(events, Event{
			Kind:        EventAprovacao,
			Label:       "Aprovação",
			Date:        o.ApprovalDate,
			Description: fmt.Sprintf("Orçamento aprovado após %d dia(s)", days),
			ElapsedDays: days,
		})
	}

	if o.Status == entities.OrderStatusPronto {
		b := valuation.OrderTotals(o)
		events = append(events, Event{
			Kind:        EventPronto,
			Label:       "Pronto para entrega",
			Pending:     true,
			Description: fmt.Sprintf("%d serviço(s), total R$ %.2f", len(o.Services), b.FinalTotal),
		})
	}

	if o.DeliveryDate != nil {
		days := elapsedDays(o.EntryDate, *o.DeliveryDate)
		events = append(events, Event{
			Kind:        EventEntrega,
			Label:       "Entrega",
			Date:        o.DeliveryDate,
			Description: fmt.Sprintf("Equipamento entregue após %d dia(s)", days),
			ElapsedDays: days,
		})
	}

	b := valuation.OrderTotals(o)
	events = append(events, Event{
		Kind:        EventFinanceiro,
		Label:       "Financeiro",
		Description: fmt.Sprintf("Subtotal R$ %.2f, total R$ %.2f (%s)", b.ServicesSum, b.FinalTotal, o.Financial),
		Breakdown:   &b,
	})

	return events
}

// elapsedDays returns whole days between from and to, rounded up. Same-day
// transitions count as zero.
func elapsedDays(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
