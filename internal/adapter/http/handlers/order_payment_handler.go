package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler handles HTTP requests for order charges.

type OrderPaymentHandler struct {
	usecase usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc}
}

// ChargeOrder charges the order's computed final total through the payment
// gateway and records the payment.
func (h *OrderPaymentHandler) ChargeOrder(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}
	log.Printf("[payment][handler] charge start order_number=%d", number)

	payload, err := readProviderPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_number=%d err=%v", number, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_number=%d err=%v", number, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.ChargeOrder(c.Request.Context(), number, payload)
	if err != nil {
		log.Printf("[payment][handler] charge failed order_number=%d err=%v", number, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success order_number=%d payment_id=%s status=%s", number, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromOrderPayment(created))
}

// GetOrderPayment returns one payment record by its provider id.
func (h *OrderPaymentHandler) GetOrderPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(p))
}

// ListOrderPayments returns every payment recorded against an order.
func (h *OrderPaymentHandler) ListOrderPayments(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	payments, err := h.usecase.ListByOrderNumber(c.Request.Context(), number)
	if err != nil {
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.OrderPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.ProviderPayload) > 0 {
		if strings.TrimSpace(string(envelope.ProviderPayload)) == "null" {
			return nil, errors.New("provider_payload cannot be empty")
		}
		return envelope.ProviderPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderWithoutValue):
		return pkg.NewDomainErrorSimple("ORDER_WITHOUT_VALUE", "Order has no billable value", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
