package usecase

import (
	"errors"
	"sync"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)

// IDraftUseCase maintains the single mutable cart built before submission.
//
// Every mutation synchronously persists the full draft so it survives a
// process restart. Persistence failures are logged and do not interrupt
// the in-memory draft, which stays the source of truth for the session.
type IDraftUseCase interface {
	AddItem(p entities.Product)
	RemoveItem(index int) error
	SetQuantity(productID string, quantity int)
	SetMetadata(name, description string)
	Draft() entities.OrderDraft
	Total() decimal.Decimal
	Clear()
}

type DraftUseCase struct {
	store interfaces.IDraftStore

	mu    sync.Mutex
	draft entities.OrderDraft
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

// NewDraftUseCase rehydrates the draft from the store if one was saved,
// otherwise starts empty.
func NewDraftUseCase(store interfaces.IDraftStore) *DraftUseCase {
	u := &DraftUseCase{store: store}

	draft, ok, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load saved draft, starting empty")
		return u
	}
	if ok {
		u.draft = draft
	}
	return u
}

// AddItem appends a line item snapshotting the product's name and price, or
// increments the quantity when the product is already in the draft.
func (u *DraftUseCase) AddItem(p entities.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.draft.Items {
		if u.draft.Items[i].ProductID == p.ID {
			u.draft.Items[i].Quantity++
			u.persistLocked()
			return
		}
	}

	u.draft.Items = append(u.draft.Items, entities.OrderLineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    1,
	})
	u.persistLocked()
}

// RemoveItem removes a line item by position.
func (u *DraftUseCase) RemoveItem(index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if index < 0 || index >= len(u.draft.Items) {
		return ErrItemIndexOutOfRange
	}
	u.draft.Items = append(u.draft.Items[:index], u.draft.Items[index+1:]...)
	u.persistLocked()
	return nil
}

// SetQuantity sets a line item's quantity directly. Negative input is
// coerced to zero; a zero-quantity item is retained, not removed, so the
// user can zero a line out before deciding to drop it. An unknown product
// id is a no-op.
func (u *DraftUseCase) SetQuantity(productID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.draft.Items {
		if u.draft.Items[i].ProductID == productID {
			u.draft.Items[i].Quantity = quantity
			u.persistLocked()
			return
		}
	}
}

// SetMetadata updates the order name and description.
func (u *DraftUseCase) SetMetadata(name, description string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.draft.Name = name
	u.draft.Description = description
	u.persistLocked()
}

// Draft returns a deep copy of the current draft.
func (u *DraftUseCase) Draft() entities.OrderDraft {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.draft.Clone()
}

// Total recomputes price×quantity over the current items on every call.
func (u *DraftUseCase) Total() decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.draft.Total()
}

// Clear resets the draft and erases the persisted copy.
func (u *DraftUseCase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.draft = entities.OrderDraft{}
	if err := u.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear saved draft")
	}
}

func (u *DraftUseCase) persistLocked() {
	if err := u.store.Save(u.draft.Clone()); err != nil {
		log.Warn().Err(err).Msg("failed to persist draft, keeping in-memory copy")
	}
}
