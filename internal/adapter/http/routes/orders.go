package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, paymentHandler *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_number", orderHandler.GetOrder)
		orders.PUT("/:order_number", orderHandler.UpdateOrder)
		orders.DELETE("/:order_number", orderHandler.DeleteOrder)

		// Status técnico e financeiro são dimensões independentes.
		orders.PATCH("/:order_number/status", orderHandler.UpdateStatus)
		orders.PATCH("/:order_number/financial", orderHandler.UpdateFinancial)

		orders.POST("/:order_number/clone", orderHandler.CloneOrder)
		orders.GET("/:order_number/totals", orderHandler.GetTotals)
		orders.GET("/:order_number/timeline", orderHandler.GetTimeline)

		orders.POST("/:order_number/payments", paymentHandler.ChargeOrder)
		orders.GET("/:order_number/payments", paymentHandler.ListOrderPayments)
		orders.GET("/:order_number/payments/:payment_id", paymentHandler.GetOrderPayment)
	}
}
