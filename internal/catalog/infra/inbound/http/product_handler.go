package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/mirtech-api/internal/catalog/application"
	"github.com/davicafu/mirtech-api/internal/catalog/domain"
	"github.com/davicafu/mirtech-api/pkg/utils"
)

// ProductHandler encapsula los endpoints HTTP del catálogo.
type ProductHandler struct {
	service *application.ProductService
}

func NewProductHandler(service *application.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// queryInt lee un query param entero; valores ausentes o no numéricos
// devuelven el fallback (la normalización de rangos la hace el dominio).
func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// ListProducts endpoint GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	f := domain.NewProductFilter(
		c.Query("category"),
		c.Query("search"),
		c.DefaultQuery("sort_by", "id"),
		c.DefaultQuery("sort_order", "asc"),
		queryInt(c, "skip", 0),
		queryInt(c, "limit", 10),
	)

	page, err := h.service.ListProducts(c.Request.Context(), f)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}
