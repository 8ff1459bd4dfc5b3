package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"garden_manager/internal/adapter/http/handlers/mocks"
	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/draft/submit", h.SubmitDraft)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/selected", h.SelectedOrder)
	r.PATCH("/v1/orders/:id/status", h.SetStatus)
	r.PUT("/v1/orders/:id/select", h.SelectOrder)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	return r
}

func TestOrderHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("creates the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any()).Return(entities.Order{
			ID:     "o1",
			Date:   time.Now().UTC(),
			Name:   "Garden refresh",
			Total:  decimal.NewFromFloat(25.00),
			Status: entities.OrderStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/submit", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.ID != "o1" || body.Status != "Pending" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any()).Return(entities.Order{}, usecase.ErrEmptyOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/submit", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any()).Return(entities.Order{}, errors.New("backend unreachable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/submit", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Reload(gomock.Any()).Return(nil)
		uc.EXPECT().Filter(usecase.OrderFilter{Status: "Pending", Search: "rose", Date: "2025-03-14"}).
			Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusPending}})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=Pending&search=rose&date=2025-03-14", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 order, got %d", len(body))
		}
	})

	t.Run("reload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Reload(gomock.Any()).Return(errors.New("backend unreachable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderLifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "o1", entities.OrderStatus("Teleported")).Return(usecase.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString(`{"status":"Teleported"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "ghost", entities.OrderStatusShipped).Return(usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ghost/status", bytes.NewBufferString(`{"status":"Shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("updates the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "o1", entities.OrderStatusDelivered).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString(`{"status":"Delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deletes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "o1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/o1", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "ghost").Return(usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ghost", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Selection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("selects a cached order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Select("o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusPending}, true)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/o1/select", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("selecting an unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Select("ghost").Return(entities.Order{}, false)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ghost/select", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Selected().Return(entities.Order{}, false)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/selected", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
