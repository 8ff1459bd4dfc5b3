package entities

import "github.com/shopspring/decimal"

// ProductStatus reflects catalog availability as shown in the product list.
type ProductStatus string

const (
	ProductStatusInStock    ProductStatus = "In Stock"
	ProductStatusLowStock   ProductStatus = "Low Stock"
	ProductStatusOutOfStock ProductStatus = "Out of Stock"
)

// Product is a catalog entry. It is owned by the catalog cache and read-only
// to the order components; changes arrive only through a full refetch.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Status      ProductStatus   `json:"status"`
}

// StockItem is an inventory entry. It is deliberately unrelated to Product:
// nothing links an order's line items to stock quantities, and creating an
// order never decrements stock. That decoupling is inherited behavior and is
// kept as-is pending product-owner clarification.
type StockItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}
