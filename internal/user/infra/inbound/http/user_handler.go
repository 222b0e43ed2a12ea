package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/mirtech-api/internal/user/application"
	"github.com/davicafu/mirtech-api/internal/user/domain"
	"github.com/davicafu/mirtech-api/pkg/utils"
)

// UserHandler encapsula los endpoints HTTP relacionados con User.
type UserHandler struct {
	service *application.UserService
}

func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// ListUsers endpoint GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	f := domain.NewUserFilter(
		c.Query("search"),
		c.Query("email"),
		c.DefaultQuery("sort_by", "id"),
		c.DefaultQuery("sort_order", "asc"),
		queryInt(c, "skip", 0),
		queryInt(c, "limit", 10),
	)

	page, err := h.service.ListUsers(c.Request.Context(), f)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateUser endpoint POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			utils.SendBadRequest(c, "email already registered")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, user)
}
