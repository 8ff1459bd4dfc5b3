package interfaces

import (
	"context"

	"garden_manager/internal/domain/entities"
)

// ICatalogGateway abstracts the persistence backend for products and stock.
//
// Products and stock items are independent aggregates; the gateway performs
// no cross-checks between them.
type ICatalogGateway interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	AddProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListStockItems(ctx context.Context) ([]entities.StockItem, error)
	AddStockItem(ctx context.Context, it entities.StockItem) (entities.StockItem, error)
	UpdateStockItem(ctx context.Context, it entities.StockItem) error
	DeleteStockItem(ctx context.Context, id string) error
}
