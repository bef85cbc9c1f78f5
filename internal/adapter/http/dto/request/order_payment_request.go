package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the charge route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying payment
// provider schemas; the transaction amount inside it is always overwritten with
// the order's computed total.

type OrderPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
