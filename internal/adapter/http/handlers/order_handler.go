package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "garden_manager/internal/adapter/http/dto/request"
	response "garden_manager/internal/adapter/http/dto/response"
	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase"
	"garden_manager/pkg"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler exposes the order lifecycle over HTTP: submitting the active
// draft, listing with filters, status changes, deletion and selection.
type OrderHandler struct {
	usecase usecase.IOrderLifecycleUseCase
}

func NewOrderHandler(uc usecase.IOrderLifecycleUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitDraft turns the active draft into an order. The draft is cleared
// only after the gateway confirms creation.
func (h *OrderHandler) SubmitDraft(c *gin.Context) {
	order, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders reloads the cache from the gateway and returns the orders
// matching the status/search/date query filters.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	if err := h.usecase.Reload(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter := usecase.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Date:   c.Query("date"),
	}
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.Filter(filter)))
}

// SetStatus updates the status of an order.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status)); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOrder removes an order permanently.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectOrder marks a cached order as the current selection.
func (h *OrderHandler) SelectOrder(c *gin.Context) {
	order, ok := h.usecase.Select(c.Param("id"))
	if !ok {
		appErr := mapOrderError(usecase.ErrOrderNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SelectedOrder returns the currently selected order, if any.
func (h *OrderHandler) SelectedOrder(c *gin.Context) {
	order, ok := h.usecase.Selected()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NO_ORDER_SELECTED", "No order selected", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Cannot submit an order without items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingName):
		return pkg.NewDomainErrorSimple("MISSING_ORDER_NAME", "Order name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_ORDER_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
