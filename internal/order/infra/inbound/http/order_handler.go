package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/mirtech-api/internal/order/application"
	"github.com/davicafu/mirtech-api/internal/order/domain"
	"github.com/davicafu/mirtech-api/pkg/utils"
)

// OrderHandler encapsula los endpoints HTTP relacionados con Order.
type OrderHandler struct {
	service *application.OrderService
}

func NewOrderHandler(service *application.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// ListOrders endpoint GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	f, err := domain.NewOrderFilter(
		c.Query("username"),
		c.Query("start_date"),
		c.Query("end_date"),
		c.DefaultQuery("sort_by", "id"),
		c.DefaultQuery("sort_order", "asc"),
		queryInt(c, "skip", 0),
		queryInt(c, "limit", 10),
	)
	if err != nil {
		// Fecha no parseable: error de cliente, sin reintentos.
		utils.SendBadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListOrders(c.Request.Context(), f)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetOrder endpoint GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid order id")
		return
	}

	detail, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			utils.SendNotFound(c, "order not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateOrder endpoint POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		UserID    int64   `json:"user_id" binding:"required"`
		CreatedAt *string `json:"created_at,omitempty"` // ISO8601, opcional
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	var createdAt *time.Time
	if req.CreatedAt != nil {
		t, err := time.Parse(time.RFC3339, *req.CreatedAt)
		if err != nil {
			utils.SendBadRequest(c, "invalid created_at format, use RFC3339")
			return
		}
		createdAt = &t
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.UserID, createdAt)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, order)
}
