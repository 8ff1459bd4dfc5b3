package interfaces

import "garden_manager/internal/domain/entities"

// IDraftStore persists the single active order draft across restarts.
//
// Save must be atomic (write-to-temp-then-rename or an atomic upsert) so a
// crash mid-write never leaves a corrupt draft behind. Load returns
// ok=false when no draft has been saved.
type IDraftStore interface {
	Load() (draft entities.OrderDraft, ok bool, err error)
	Save(draft entities.OrderDraft) error
	Clear() error
}
