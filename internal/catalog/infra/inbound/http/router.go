package http

import "github.com/gin-gonic/gin"

func RegisterProductRoutes(rg *gin.RouterGroup, handler *ProductHandler) {
	products := rg.Group("/products")
	{
		products.GET("", handler.ListProducts)
	}
}
