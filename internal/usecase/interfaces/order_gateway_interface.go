package interfaces

import (
	"context"

	"garden_manager/internal/domain/entities"
)

// IOrderGateway abstracts the persistence backend for orders.
//
// The backend owns id assignment, the creation timestamp and the stored
// total; callers hand it a frozen copy of the draft's items and must not
// mutate them while a call is in flight.
type IOrderGateway interface {
	CreateOrder(ctx context.Context, name, description string, items []entities.OrderLineItem) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}
