package request

import (
	"github.com/shopspring/decimal"

	"garden_manager/internal/domain/entities"
)

type ProductRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// ToEntity converts the JSON payload into the domain product. Prices arrive
// as JSON numbers and are converted to decimals at the boundary so the rest
// of the system never does float arithmetic on money.
func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       decimal.NewFromFloat(r.Price),
		Description: r.Description,
		Status:      entities.ProductStatus(r.Status),
	}
}

type StockItemRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

func (r StockItemRequest) ToEntity() entities.StockItem {
	return entities.StockItem{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
}
