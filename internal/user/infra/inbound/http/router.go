package http

import "github.com/gin-gonic/gin"

func RegisterUserRoutes(rg *gin.RouterGroup, handler *UserHandler) {
	users := rg.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
	}
}
