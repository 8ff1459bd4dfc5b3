package response

import (
	"time"

	"garden_manager/internal/domain/entities"
	"garden_manager/pkg"
)

type OrderLineItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID           string                  `json:"id"`
	Date         time.Time               `json:"date"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Items        []OrderLineItemResponse `json:"items"`
	Total        float64                 `json:"total"`
	TotalDisplay string                  `json:"total_display"`
	Status       string                  `json:"status"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Date:         o.Date,
		Name:         o.Name,
		Description:  o.Description,
		Items:        fromLineItems(o.Items),
		Total:        o.Total.InexactFloat64(),
		TotalDisplay: pkg.FormatPrice(o.Total),
		Status:       string(o.Status),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func fromLineItems(items []entities.OrderLineItem) []OrderLineItemResponse {
	out := make([]OrderLineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderLineItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price.InexactFloat64(),
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal().InexactFloat64(),
		})
	}
	return out
}
