package contracts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/order/application"
	orderDomain "github.com/davicafu/mirtech-api/internal/order/domain"
	orderHttp "github.com/davicafu/mirtech-api/internal/order/infra/inbound/http"
	"github.com/davicafu/mirtech-api/tests/mocks"
)

func setupOrderRouter(repo *mocks.InMemoryOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := application.NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())
	router := gin.New()
	orderHttp.RegisterOrderRoutes(router.Group("/api/v1"), orderHttp.NewOrderHandler(service))
	return router
}

func TestListOrders_HTTPContract(t *testing.T) {
	repo := mocks.NewInMemoryOrderRepo()
	repo.Usernames[1] = "Ana"
	repo.AddOrder(orderDomain.Order{ID: 1, UserID: 1, CreatedAt: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)})
	router := setupOrderRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?username=ana", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			ID        int64   `json:"id"`
			UserID    int64   `json:"user_id"`
			Username  *string `json:"username"`
			CreatedAt string  `json:"created_at"`
		} `json:"items"`
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Len(t, body.Items, 1)
	assert.Equal(t, "2024-06-15T10:00:00Z", body.Items[0].CreatedAt)
	assert.NotNil(t, body.Items[0].Username)
}

func TestListOrders_EmptyListingSerializesItemsAsArray(t *testing.T) {
	router := setupOrderRouter(mocks.NewInMemoryOrderRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
}

func TestListOrders_BadDateRangeIs400(t *testing.T) {
	router := setupOrderRouter(mocks.NewInMemoryOrderRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?start_date=junio&end_date=2024-06-30", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders_InvalidSortByDegradesSilently(t *testing.T) {
	repo := mocks.NewInMemoryOrderRepo()
	repo.AddOrder(orderDomain.Order{ID: 1, UserID: 1, CreatedAt: time.Now().UTC()})
	router := setupOrderRouter(repo)

	// Un sort_by fuera de la lista blanca no es un error para el cliente.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?sort_by=password", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrder_NotFoundIs404(t *testing.T) {
	router := setupOrderRouter(mocks.NewInMemoryOrderRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_NonNumericIDIs400(t *testing.T) {
	router := setupOrderRouter(mocks.NewInMemoryOrderRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
