package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valuation"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrOrderPaymentNotFound       = errors.New("order payment not found")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrOrderWithoutValue          = errors.New("order has no billable value")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IOrderPaymentUseCase charges a service order through the payment gateway and
// keeps the resulting payment records.
//
// The charged amount is never taken from the caller: it is always the order's
// final total recomputed from its items and percentages at charge time.

type IOrderPaymentUseCase interface {
	ChargeOrder(ctx context.Context, orderNumber int, providerPayload json.RawMessage) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderNumber(ctx context.Context, orderNumber int) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo      interfaces.IOrderPaymentRepository
	orderRepo interfaces.IServiceOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orderRepo interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *OrderPaymentUseCase) ChargeOrder(ctx context.Context, orderNumber int, providerPayload json.RawMessage) (entities.OrderPayment, error) {
	log.Printf("[payment][usecase] charge start order_number=%d payload_len=%d", orderNumber, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()

	if orderNumber <= 0 {
		return entities.OrderPayment{}, ErrInvalidOrderNumber
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_number=%d", orderNumber)
			return entities.OrderPayment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, errors.New("payment gateway not configured")
	}

	order, err := u.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_number=%d err=%v", orderNumber, err)
		return entities.OrderPayment{}, err
	}
	if order.OrderNumber == 0 {
		return entities.OrderPayment{}, ErrOrderNotFound
	}

	amount := valuation.OrderTotals(order).FinalTotal
	if amount <= 0 {
		log.Printf("[payment][usecase] order without billable value order_number=%d amount=%.2f", orderNumber, amount)
		return entities.OrderPayment{}, ErrOrderWithoutValue
	}

	// external_reference links the provider payment back to the order; the
	// transaction amount is always the freshly computed total.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = strconv.Itoa(orderNumber)
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("OS %d", orderNumber)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway order_number=%d", orderNumber)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": strconv.Itoa(orderNumber),
			"transaction_amount": amount,
			"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.OrderPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_number=%d err=%v", orderNumber, err)
			if isGatewayUnauthorized(err) {
				return entities.OrderPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.OrderPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.OrderPayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_number=%d err=%v", orderNumber, err)
	}

	p := entities.OrderPayment{
		ID:                 providerPaymentID,
		OrderNumber:        orderNumber,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed order_number=%d payment_id=%s err=%v", orderNumber, p.ID, err)
		return entities.OrderPayment{}, err
	}
	log.Printf("[payment][usecase] charge success order_number=%d payment_id=%s amount=%.2f", orderNumber, created.ID, created.Amount)
	return created, nil
}

func (u *OrderPaymentUseCase) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.ID == "" {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	return p, nil
}

func (u *OrderPaymentUseCase) ListByOrderNumber(ctx context.Context, orderNumber int) ([]entities.OrderPayment, error) {
	if orderNumber <= 0 {
		return nil, ErrInvalidOrderNumber
	}
	return u.repo.ListByOrderNumber(ctx, orderNumber)
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
