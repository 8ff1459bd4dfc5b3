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
	ErrEmptyOrder    = errors.New("cannot create an order with no items")
	ErrMissingName   = errors.New("cannot create an order without a name")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrOrderNotFound = errors.New("order not found")
)

// OrderFilter is a pure projection over the cached order list. Empty fields
// match everything; Status additionally treats "All" as a wildcard. Date is
// a calendar day in "2006-01-02" form.
type OrderFilter struct {
	Status string
	Search string
	Date   string
}

// IOrderLifecycleUseCase owns order creation from the active draft and all
// status transitions afterwards.
//
// Ordering rules it guarantees:
//   - validation happens before any gateway call;
//   - the draft is cleared only after the gateway confirms creation, so a
//     failed submission leaves the draft intact for retry;
//   - local cached state is mutated only after a gateway call succeeds;
//   - gateway failures are reported once via the notifier and never retried.
type IOrderLifecycleUseCase interface {
	Create(ctx context.Context) (entities.Order, error)
	SetStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	Delete(ctx context.Context, orderID string) error
	Reload(ctx context.Context) error
	Orders() []entities.Order
	Filter(f OrderFilter) []entities.Order
	Select(orderID string) (entities.Order, bool)
	Selected() (entities.Order, bool)
}

type OrderLifecycleUseCase struct {
	gateway  interfaces.IOrderGateway
	draft    IDraftUseCase
	notifier interfaces.INotifier

	mu         sync.Mutex
	orders     []entities.Order
	selectedID string
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(gateway interfaces.IOrderGateway, draft IDraftUseCase, notifier interfaces.INotifier) *OrderLifecycleUseCase {
	return &OrderLifecycleUseCase{gateway: gateway, draft: draft, notifier: notifier}
}

// Create submits the active draft as a new order. The draft's items are
// frozen by deep copy before the call, so edits made while the gateway call
// is in flight cannot leak into the stored order.
func (u *OrderLifecycleUseCase) Create(ctx context.Context) (entities.Order, error) {
	draft := u.draft.Draft()

	if len(draft.Items) == 0 {
		u.notifier.Notify("Cannot create an empty order", entities.NotificationError)
		return entities.Order{}, ErrEmptyOrder
	}
	if strings.TrimSpace(draft.Name) == "" {
		u.notifier.Notify("An order name is required", entities.NotificationError)
		return entities.Order{}, ErrMissingName
	}

	order, err := u.gateway.CreateOrder(ctx, draft.Name, draft.Description, entities.CloneLineItems(draft.Items))
	if err != nil {
		u.notifier.Notify("Failed to create the order", entities.NotificationError)
		return entities.Order{}, err
	}

	u.mu.Lock()
	u.orders = append(u.orders, order)
	u.mu.Unlock()

	u.draft.Clear()
	u.notifier.Notify("Order created successfully", entities.NotificationSuccess)
	return order, nil
}

// SetStatus moves an order to a new status. Any known status may follow any
// other; only unrecognized status strings are rejected.
func (u *OrderLifecycleUseCase) SetStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	if !entities.KnownOrderStatus(status) {
		u.notifier.Notify("Unknown order status", entities.NotificationError)
		return ErrUnknownStatus
	}
	if !u.cached(orderID) {
		u.notifier.Notify("Order not found", entities.NotificationError)
		return ErrOrderNotFound
	}

	if err := u.gateway.UpdateOrderStatus(ctx, orderID, status); err != nil {
		u.notifier.Notify("Failed to update order status", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			u.orders[i].Status = status
			break
		}
	}
	u.mu.Unlock()

	u.notifier.Notify("Order status updated", entities.NotificationSuccess)
	return nil
}

// Delete removes an order. The "currently viewed" selection is cleared when
// it pointed at the deleted order.
func (u *OrderLifecycleUseCase) Delete(ctx context.Context, orderID string) error {
	if !u.cached(orderID) {
		u.notifier.Notify("Order not found", entities.NotificationError)
		return ErrOrderNotFound
	}

	if err := u.gateway.DeleteOrder(ctx, orderID); err != nil {
		u.notifier.Notify("Failed to delete the order", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			u.orders = append(u.orders[:i], u.orders[i+1:]...)
			break
		}
	}
	if u.selectedID == orderID {
		u.selectedID = ""
	}
	u.mu.Unlock()

	u.notifier.Notify("Order deleted", entities.NotificationSuccess)
	return nil
}

func (u *OrderLifecycleUseCase) cached(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, o := range u.orders {
		if o.ID == orderID {
			return true
		}
	}
	return false
}

// Reload replaces the cached order list from the gateway. The previous
// cache is kept when the call fails.
func (u *OrderLifecycleUseCase) Reload(ctx context.Context) error {
	orders, err := u.gateway.ListOrders(ctx)
	if err != nil {
		u.notifier.Notify("Failed to load orders", entities.NotificationError)
		return err
	}

	u.mu.Lock()
	u.orders = orders
	u.mu.Unlock()
	return nil
}

// Orders returns the cached order list.
func (u *OrderLifecycleUseCase) Orders() []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.Order, len(u.orders))
	copy(out, u.orders)
	return out
}

// Filter projects the cached list without touching the gateway.
func (u *OrderLifecycleUseCase) Filter(f OrderFilter) []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	search := strings.ToLower(f.Search)
	out := make([]entities.Order, 0, len(u.orders))
	for _, o := range u.orders {
		if f.Status != "" && f.Status != "All" && string(o.Status) != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.Name), search) {
			continue
		}
		if f.Date != "" && o.Date.Format("2006-01-02") != f.Date {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Select marks an order as currently viewed.
func (u *OrderLifecycleUseCase) Select(orderID string) (entities.Order, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, o := range u.orders {
		if o.ID == orderID {
			u.selectedID = orderID
			return o, true
		}
	}
	return entities.Order{}, false
}

// Selected returns the currently viewed order, if any.
func (u *OrderLifecycleUseCase) Selected() (entities.Order, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.selectedID == "" {
		return entities.Order{}, false
	}
	for _, o := range u.orders {
		if o.ID == u.selectedID {
			return o, true
		}
	}
	return entities.Order{}, false
}
