package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_manager/internal/adapter/http/handlers"
)

const (
	PathDraft         = "/draft"
	PathOrders        = "/orders"
	PathProducts      = "/products"
	PathStock         = "/stock"
	PathNotifications = "/notifications"
)

func addGardenRoutes(
	rg *gin.RouterGroup,
	draftHandler *handlers.DraftHandler,
	orderHandler *handlers.OrderHandler,
	catalogHandler *handlers.CatalogHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	draft := rg.Group(PathDraft)
	{
		draft.GET("", draftHandler.GetDraft)
		draft.PATCH("", draftHandler.SetMetadata)
		draft.DELETE("", draftHandler.ClearDraft)
		draft.POST("/items", draftHandler.AddItem)
		draft.PATCH("/items/quantity", draftHandler.SetQuantity)
		draft.DELETE("/items/:index", draftHandler.RemoveItem)
		draft.POST("/submit", orderHandler.SubmitDraft)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/selected", orderHandler.SelectedOrder)
		orders.PATCH("/:id/status", orderHandler.SetStatus)
		orders.PUT("/:id/select", orderHandler.SelectOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.POST("", catalogHandler.CreateProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
	}

	stock := rg.Group(PathStock)
	{
		stock.GET("", catalogHandler.ListStock)
		stock.POST("", catalogHandler.CreateStockItem)
		stock.PUT("/:id", catalogHandler.UpdateStockItem)
		stock.DELETE("/:id", catalogHandler.DeleteStockItem)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("", notificationHandler.PushNotification)
		notifications.DELETE("/:id", notificationHandler.DismissNotification)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
