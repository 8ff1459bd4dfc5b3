package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"garden_manager/internal/adapter/http/handlers/mocks"
	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase"
)

func catalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.POST("/v1/products", h.CreateProduct)
	r.PUT("/v1/products/:id", h.UpdateProduct)
	r.DELETE("/v1/products/:id", h.DeleteProduct)
	r.GET("/v1/stock", h.ListStock)
	r.POST("/v1/stock", h.CreateStockItem)
	r.PUT("/v1/stock/:id", h.UpdateStockItem)
	r.DELETE("/v1/stock/:id", h.DeleteStockItem)
	return r
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("refreshes and returns the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ReloadProducts(gomock.Any()).Return(nil)
		uc.EXPECT().Products().Return([]entities.Product{
			{ID: "p1", Name: "Rose Bush", Price: decimal.NewFromFloat(12.50), Status: entities.ProductStatusInStock},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []struct {
			Name         string `json:"name"`
			PriceDisplay string `json:"price_display"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(body) != 1 || body[0].PriceDisplay != "₪12.50" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ReloadProducts(gomock.Any()).Return(errors.New("backend unreachable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().AddProduct(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrNegativePrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"name":"Rose Bush","price":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("creates the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		var received entities.Product
		uc.EXPECT().AddProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p entities.Product) (entities.Product, error) {
				received = p
				p.ID = "p1"
				return p, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"name":"Rose Bush","price":12.5,"status":"In Stock"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !received.Price.Equal(decimal.NewFromFloat(12.5)) {
			t.Fatalf("expected decimal price 12.5, got %s", received.Price)
		}
	})
}

func TestCatalogHandler_UpdateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	var received entities.Product
	uc.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p entities.Product) error {
			received = p
			return nil
		})

	req := httptest.NewRequest(http.MethodPut, "/v1/products/p1", bytes.NewBufferString(`{"id":"ignored","name":"Rose Bush","price":14}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	catalogRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if received.ID != "p1" {
		t.Fatalf("expected path id to win, got %q", received.ID)
	}
}

func TestCatalogHandler_Stock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ReloadStock(gomock.Any()).Return(nil)
		uc.EXPECT().StockItems().Return([]entities.StockItem{{ID: "s1", Name: "Potting Soil", Quantity: 40}})

		req := httptest.NewRequest(http.MethodGet, "/v1/stock", nil)
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("creates a stock item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().AddStockItem(gomock.Any(), entities.StockItem{Name: "Potting Soil", Quantity: 40}).
			Return(entities.StockItem{ID: "s1", Name: "Potting Soil", Quantity: 40}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stock", bytes.NewBufferString(`{"name":"Potting Soil","quantity":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("deletes a stock item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().DeleteStockItem(gomock.Any(), "s1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/stock/s1", nil)
		w := httptest.NewRecorder()
		catalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
