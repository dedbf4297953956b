package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/application/service"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/response"
	"github.com/quickserve/pos-api/internal/presentation/http/handler"
	"github.com/quickserve/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStoreRepo struct {
	store entity.Store
}

func (s *stubStoreRepo) List(ctx context.Context) ([]entity.Store, error) {
	return []entity.Store{s.store}, nil
}

func (s *stubStoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	if id == s.store.ID {
		return &s.store, nil
	}
	return nil, nil
}

type stubChargeRepo struct {
	charges map[uuid.UUID]entity.Charge
}

func (s *stubChargeRepo) List(ctx context.Context) ([]entity.Charge, error) {
	return nil, nil
}

func (s *stubChargeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Charge, error) {
	var out []entity.Charge
	for _, id := range ids {
		if c, ok := s.charges[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubOrderRepo struct {
	mu     sync.Mutex
	stock  map[uuid.UUID]int
	orders map[uuid.UUID]*entity.Order
}

func (s *stubOrderRepo) CreateWithInventory(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range order.Items {
		if s.stock[item.VariantID] < item.Quantity {
			return apperror.NewInsufficientStockError(item.VariantID.String())
		}
	}
	for _, item := range order.Items {
		s.stock[item.VariantID] -= item.Quantity
	}
	order.ID = uuid.New()
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id], nil
}

func (s *stubOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return nil, nil
}

// newTestRouter wires the order handler into a router the same way the app
// does, including method-not-allowed handling.
func newTestRouter(t *testing.T) (*gin.Engine, uuid.UUID, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storeID := uuid.New()
	variantID := uuid.New()

	orderRepo := &stubOrderRepo{
		stock:  map[uuid.UUID]int{variantID: 10},
		orders: make(map[uuid.UUID]*entity.Order),
	}
	chargeRepo := &stubChargeRepo{charges: map[uuid.UUID]entity.Charge{}}
	storeRepo := &stubStoreRepo{store: entity.Store{ID: storeID, Name: "Indiranagar"}}

	svc := service.NewOrderService(orderRepo, chargeRepo, storeRepo)
	h := handler.NewOrderHandler(svc)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(response.MethodNotAllowed)

	orders := router.Group("/api/v1/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.Get)
	}

	return router, storeID, variantID
}

func orderPayload(storeID, variantID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"storeId": storeID,
		"items": []map[string]interface{}{
			{"variantId": variantID, "quantity": 2, "unit_price": "120"},
		},
		"payment_method": "UPI",
	}
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, storeID, variantID := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/orders", orderPayload(storeID, variantID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool         `json:"success"`
		Data    entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)
	// 240 taxable, 21.60 CGST + 21.60 SGST
	assert.True(t, resp.Data.TotalAmount.Equal(decimal.RequireFromString("283.20")),
		"total = %s", resp.Data.TotalAmount)
}

func TestCreateOrderEndpointMalformedBody(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpointMissingItems(t *testing.T) {
	router, storeID, variantID := newTestRouter(t)

	payload := orderPayload(storeID, variantID)
	payload["items"] = []map[string]interface{}{}
	w := doJSON(router, http.MethodPost, "/api/v1/orders", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	router, storeID, variantID := newTestRouter(t)

	payload := orderPayload(storeID, variantID)
	payload["items"] = []map[string]interface{}{
		{"variantId": variantID, "quantity": 11, "unit_price": "120"},
	}
	w := doJSON(router, http.MethodPost, "/api/v1/orders", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Kind    string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "insufficient_stock", resp.Kind)
}

func TestOrdersEndpointRejectsWrongMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestGetOrderEndpoint(t *testing.T) {
	router, storeID, variantID := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/orders", orderPayload(storeID, variantID))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, "/api/v1/orders/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/orders/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
