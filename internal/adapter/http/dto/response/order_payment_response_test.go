package response

import (
	"encoding/json"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestFromOrderPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.OrderPayment{
		ID:                 "pay-1",
		OrderNumber:        7,
		Amount:             150.5,
		Date:               now,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: json.RawMessage(`{"id":"pay-1","status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"id": "pay-1", "status": "approved"},
	}

	res := FromOrderPayment(p)
	if res.ID != "pay-1" || res.OrderNumber != 7 || res.Amount != 150.5 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "aprovado" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}
	if res.ProviderPayloadRaw != `{"id":"pay-1","status":"approved"}` {
		t.Fatalf("raw payload lost: %q", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("parsed payload lost: %+v", res.ProviderPayload)
	}
}

func TestFromOrderPayments_Empty(t *testing.T) {
	res := FromOrderPayments(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}
