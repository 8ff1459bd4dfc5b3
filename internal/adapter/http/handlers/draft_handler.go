package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "garden_manager/internal/adapter/http/dto/request"
	response "garden_manager/internal/adapter/http/dto/response"
	"garden_manager/internal/usecase"
	"garden_manager/pkg"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errProductNotFound     = pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
)

// DraftHandler exposes the active order draft over HTTP.
//
// Items are added by catalog product id; the handler resolves the product
// from the catalog cache so the draft stores a name/price snapshot rather
// than a live reference.
type DraftHandler struct {
	draft   usecase.IDraftUseCase
	catalog usecase.ICatalogUseCase
}

func NewDraftHandler(draft usecase.IDraftUseCase, catalog usecase.ICatalogUseCase) *DraftHandler {
	return &DraftHandler{draft: draft, catalog: catalog}
}

// GetDraft returns the current draft with its recomputed total.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDraft(h.draft.Draft()))
}

// AddItem adds one unit of a catalog product to the draft.
func (h *DraftHandler) AddItem(c *gin.Context) {
	var payload request.AddDraftItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	product, ok := h.catalog.ProductByID(payload.ProductID)
	if !ok {
		c.JSON(errProductNotFound.HTTPStatus, errProductNotFound.ToHTTPError())
		return
	}

	h.draft.AddItem(product)
	c.JSON(http.StatusOK, response.FromDraft(h.draft.Draft()))
}

// RemoveItem deletes the draft line at the given position.
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if err := h.draft.RemoveItem(index); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(h.draft.Draft()))
}

// SetQuantity overwrites the quantity of a draft line. Negative values are
// coerced to zero and the line is kept.
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	var payload request.DraftQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	h.draft.SetQuantity(payload.ProductID, payload.Quantity)
	c.JSON(http.StatusOK, response.FromDraft(h.draft.Draft()))
}

// SetMetadata overwrites the draft's name and description.
func (h *DraftHandler) SetMetadata(c *gin.Context) {
	var payload request.DraftMetadataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	h.draft.SetMetadata(payload.Name, payload.Description)
	c.JSON(http.StatusOK, response.FromDraft(h.draft.Draft()))
}

// ClearDraft discards the draft entirely.
func (h *DraftHandler) ClearDraft(c *gin.Context) {
	h.draft.Clear()
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrItemIndexOutOfRange):
		return pkg.NewDomainErrorSimple("ITEM_INDEX_OUT_OF_RANGE", "Draft item index out of range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
