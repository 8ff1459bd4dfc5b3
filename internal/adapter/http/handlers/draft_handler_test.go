package handlers

import (
	"bytes"
	"encoding/json"
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

func draftRouter(h *DraftHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/draft", h.GetDraft)
	r.POST("/v1/draft/items", h.AddItem)
	r.DELETE("/v1/draft/items/:index", h.RemoveItem)
	r.PATCH("/v1/draft/items/quantity", h.SetQuantity)
	r.PATCH("/v1/draft", h.SetMetadata)
	r.DELETE("/v1/draft", h.ClearDraft)
	return r
}

func TestDraftHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	draft := mocks.NewMockIDraftUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewDraftHandler(draft, catalog)

	draft.EXPECT().Draft().Return(entities.OrderDraft{
		Name: "Patio refresh",
		Items: []entities.OrderLineItem{
			{ProductID: "p1", ProductName: "Rose Bush", Price: decimal.NewFromFloat(12.50), Quantity: 2},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/draft", nil)
	w := httptest.NewRecorder()
	draftRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Name != "Patio refresh" || body.Total != 25.00 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestDraftHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDraftHandler(mocks.NewMockIDraftUseCase(ctrl), mocks.NewMockICatalogUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draft := mocks.NewMockIDraftUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewDraftHandler(draft, catalog)

		catalog.EXPECT().ProductByID("ghost").Return(entities.Product{}, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/items", bytes.NewBufferString(`{"product_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("snapshots the catalog product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draft := mocks.NewMockIDraftUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewDraftHandler(draft, catalog)

		product := entities.Product{ID: "p1", Name: "Rose Bush", Price: decimal.NewFromFloat(12.50)}
		catalog.EXPECT().ProductByID("p1").Return(product, true)

		var added entities.Product
		draft.EXPECT().AddItem(gomock.Any()).Do(func(p entities.Product) { added = p })
		draft.EXPECT().Draft().Return(entities.OrderDraft{
			Items: []entities.OrderLineItem{{ProductID: "p1", ProductName: "Rose Bush", Price: product.Price, Quantity: 1}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/items", bytes.NewBufferString(`{"product_id":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if added.ID != "p1" || added.Name != "Rose Bush" {
			t.Fatalf("unexpected product passed to draft: %+v", added)
		}
	})
}

func TestDraftHandler_RemoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDraftHandler(mocks.NewMockIDraftUseCase(ctrl), mocks.NewMockICatalogUseCase(ctrl))

		req := httptest.NewRequest(http.MethodDelete, "/v1/draft/items/abc", nil)
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draft := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(draft, mocks.NewMockICatalogUseCase(ctrl))

		draft.EXPECT().RemoveItem(5).Return(usecase.ErrItemIndexOutOfRange)

		req := httptest.NewRequest(http.MethodDelete, "/v1/draft/items/5", nil)
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("removes by position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		draft := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(draft, mocks.NewMockICatalogUseCase(ctrl))

		draft.EXPECT().RemoveItem(0).Return(nil)
		draft.EXPECT().Draft().Return(entities.OrderDraft{})

		req := httptest.NewRequest(http.MethodDelete, "/v1/draft/items/0", nil)
		w := httptest.NewRecorder()
		draftRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_SetQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	draft := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(draft, mocks.NewMockICatalogUseCase(ctrl))

	draft.EXPECT().SetQuantity("p1", -4)
	draft.EXPECT().Draft().Return(entities.OrderDraft{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/draft/items/quantity", bytes.NewBufferString(`{"product_id":"p1","quantity":-4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	draftRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDraftHandler_ClearDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	draft := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(draft, mocks.NewMockICatalogUseCase(ctrl))

	draft.EXPECT().Clear()

	req := httptest.NewRequest(http.MethodDelete, "/v1/draft", nil)
	w := httptest.NewRecorder()
	draftRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
