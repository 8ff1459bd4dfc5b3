package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrStockNameRequired   = errors.New("stock item name is required")
	ErrNegativeQuantity    = errors.New("quantity must not be negative")
)

// ICatalogUseCase caches the last-fetched product and stock lists and
// forwards catalog CRUD to the gateway.
//
// The cache changes only through explicit reloads or a successful CRUD
// call; there is no incremental patching from outside.
type ICatalogUseCase interface {
	ReloadProducts(ctx context.Context) error
	ReloadStock(ctx context.Context) error
	Products() []entities.Product
	StockItems() []entities.StockItem
	ProductByID(id string) (entities.Product, bool)

	AddProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, id string) error

	AddStockItem(ctx context.Context, it entities.StockItem) (entities.StockItem, error)
	UpdateStockItem(ctx context.Context, it entities.StockItem) error
	DeleteStockItem(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	gateway  interfaces.ICatalogGateway
	notifier interfaces.INotifier

	mu       sync.Mutex
	products []entities.Product
	stock    []entities.StockItem
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(gateway interfaces.ICatalogGateway, notifier interfaces.INotifier) *CatalogUseCase {
	return &CatalogUseCase{gateway: gateway, notifier: notifier}
}

// ReloadProducts refetches the full product list.
func (u *CatalogUseCase) ReloadProducts(ctx context.Context) error {
	products, err := u.gateway.ListProducts(ctx)
	if err != nil {
		u.notifier.Notify("Failed to load products", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	u.products = products
	u.mu.Unlock()
	return nil
}

// ReloadStock refetches the full stock list.
func (u *CatalogUseCase) ReloadStock(ctx context.Context) error {
	stock, err := u.gateway.ListStockItems(ctx)
	if err != nil {
		u.notifier.Notify("Failed to load stock items", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	u.stock = stock
	u.mu.Unlock()
	return nil
}

func (u *CatalogUseCase) Products() []entities.Product {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.Product, len(u.products))
	copy(out, u.products)
	return out
}

func (u *CatalogUseCase) StockItems() []entities.StockItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.StockItem, len(u.stock))
	copy(out, u.stock)
	return out
}

// ProductByID looks the product up in the cache, not at the gateway.
func (u *CatalogUseCase) ProductByID(id string) (entities.Product, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, p := range u.products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

func (u *CatalogUseCase) AddProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	created, err := u.gateway.AddProduct(ctx, p)
	if err != nil {
		u.notifier.Notify("Failed to add the product", entities.NotificationError)
		return entities.Product{}, err
	}

	u.mu.Lock()
	u.products = append(u.products, created)
	u.mu.Unlock()
	return created, nil
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	if err := u.gateway.UpdateProduct(ctx, p); err != nil {
		u.notifier.Notify("Failed to update the product", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.products {
		if u.products[i].ID == p.ID {
			u.products[i] = p
			break
		}
	}
	u.mu.Unlock()
	return nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := u.gateway.DeleteProduct(ctx, id); err != nil {
		u.notifier.Notify("Failed to delete the product", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.products {
		if u.products[i].ID == id {
			u.products = append(u.products[:i], u.products[i+1:]...)
			break
		}
	}
	u.mu.Unlock()
	return nil
}

func (u *CatalogUseCase) AddStockItem(ctx context.Context, it entities.StockItem) (entities.StockItem, error) {
	if err := validateStockItem(it); err != nil {
		return entities.StockItem{}, err
	}

	created, err := u.gateway.AddStockItem(ctx, it)
	if err != nil {
		u.notifier.Notify("Failed to add the stock item", entities.NotificationError)
		return entities.StockItem{}, err
	}

	u.mu.Lock()
	u.stock = append(u.stock, created)
	u.mu.Unlock()
	return created, nil
}

func (u *CatalogUseCase) UpdateStockItem(ctx context.Context, it entities.StockItem) error {
	if err := validateStockItem(it); err != nil {
		return err
	}

	if err := u.gateway.UpdateStockItem(ctx, it); err != nil {
		u.notifier.Notify("Failed to update the stock item", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.stock {
		if u.stock[i].ID == it.ID {
			u.stock[i] = it
			break
		}
	}
	u.mu.Unlock()
	return nil
}

func (u *CatalogUseCase) DeleteStockItem(ctx context.Context, id string) error {
	if err := u.gateway.DeleteStockItem(ctx, id); err != nil {
		u.notifier.Notify("Failed to delete the stock item", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.stock {
		if u.stock[i].ID == id {
			u.stock = append(u.stock[:i], u.stock[i+1:]...)
			break
		}
	}
	u.mu.Unlock()
	return nil
}

func validateProduct(p entities.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductNameRequired
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func validateStockItem(it entities.StockItem) error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrStockNameRequired
	}
	if it.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
