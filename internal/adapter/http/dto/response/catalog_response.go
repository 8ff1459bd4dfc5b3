package response

import (
	"garden_manager/internal/domain/entities"
	"garden_manager/pkg"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price.InexactFloat64(),
		PriceDisplay: pkg.FormatPrice(p.Price),
		Description:  p.Description,
		Status:       string(p.Status),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type StockItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

func FromStockItem(it entities.StockItem) StockItemResponse {
	return StockItemResponse(it)
}

func FromStockItems(items []entities.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromStockItem(it))
	}
	return out
}
