package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderNumber  = pkg.NewDomainErrorSimple("INVALID_ORDER_NUMBER", "Invalid order number", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders: CRUD, the two
// independent status dimensions, clone, computed totals and the timeline.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	o, err := h.usecase.GetByNumber(c.Request.Context(), number)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), number, payload.ToChanges())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// UpdateStatus applies a technical status change. Date side effects (approval,
// delivery, reopen clears) are derived server side and persisted atomically
// with the status.
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), number, entities.OrderStatus(payload.Status))
	if err != nil {
		log.Printf("[order][handler] status change failed order_number=%d status=%s err=%v", number, payload.Status, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// UpdateFinancial applies a billing status change. No side effects; orthogonal
// to the technical status.
func (h *ServiceOrderHandler) UpdateFinancial(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.FinancialUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeFinancial(c.Request.Context(), number, entities.FinancialStatus(payload.Financial))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// CloneOrder opens a fresh order copying customer/equipment/items/percentages
// from an existing one; lifecycle fields restart from scratch.
func (h *ServiceOrderHandler) CloneOrder(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	created, err := h.usecase.Clone(c.Request.Context(), number)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) GetTotals(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	b, err := h.usecase.Totals(c.Request.Context(), number)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *ServiceOrderHandler) GetTimeline(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	events, err := h.usecase.Timeline(c.Request.Context(), number)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(events))
}

func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), number); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func orderNumberParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("order_number"))
	if err != nil || number <= 0 {
		c.JSON(errInvalidOrderNumber.HTTPStatus, errInvalidOrderNumber.ToHTTPError())
		return 0, false
	}
	return number, true
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidFinancialStatus),
		errors.Is(err, usecase.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
