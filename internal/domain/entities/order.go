package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of a submitted order.
//
// Transitions are intentionally permissive: any status may move to any
// other, including away from Delivered or Cancelled. The source system
// never enforced adjacency and stricter policies broke its workflows.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// KnownOrderStatus reports whether s is one of the five order statuses.
func KnownOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderLineItem is a product reference inside a draft or order. Name and
// price are snapshotted when the item is added and are never re-derived
// from the live catalog, so historical orders survive catalog changes.
type OrderLineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is price multiplied by quantity.
func (li OrderLineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// OrderDraft is the single mutable in-progress cart. Items are unique by
// ProductID. The active draft is durably persisted and survives restarts.
type OrderDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []OrderLineItem `json:"items"`
}

// Total sums price×quantity over the draft's items.
func (d OrderDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.Items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Clone returns a deep copy of the draft.
func (d OrderDraft) Clone() OrderDraft {
	out := d
	out.Items = CloneLineItems(d.Items)
	return out
}

// CloneLineItems deep-copies a line item slice.
func CloneLineItems(items []OrderLineItem) []OrderLineItem {
	if items == nil {
		return nil
	}
	out := make([]OrderLineItem, len(items))
	copy(out, items)
	return out
}

// Order is an immutable record created from a frozen draft. Total is stored
// at creation time and never recomputed afterwards.
type Order struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []OrderLineItem `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
}
