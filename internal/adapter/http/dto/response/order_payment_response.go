package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type OrderPaymentResponse struct {
	ID          string    `json:"id"`
	OrderNumber int       `json:"order_number"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		ID:                 p.ID,
		OrderNumber:        p.OrderNumber,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromOrderPayments(payments []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromOrderPayment(p))
	}
	return out
}
