package http

import "github.com/gin-gonic/gin"

func RegisterOrderRoutes(rg *gin.RouterGroup, handler *OrderHandler) {
	orders := rg.Group("/orders")
	{
		orders.GET("", handler.ListOrders)
		orders.GET("/:id", handler.GetOrder)
		orders.POST("", handler.CreateOrder)
	}
}
