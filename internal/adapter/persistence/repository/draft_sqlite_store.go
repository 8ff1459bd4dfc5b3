package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"
)

// activeDraftKey is the single durable key: there is exactly one draft per
// installation, matching the one-cart-per-session model.
const activeDraftKey = "active"

// DraftSQLiteStore keeps the serialized active draft in a one-row sqlite
// table. The upsert is a single statement, so a crash mid-write leaves
// either the old or the new draft, never a torn one.
type DraftSQLiteStore struct {
	db *sql.DB
}

var _ interfaces.IDraftStore = (*DraftSQLiteStore)(nil)

func NewDraftSQLiteStore(db *sql.DB) (*DraftSQLiteStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS order_drafts (
		id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create order_drafts table: %w", err)
	}
	return &DraftSQLiteStore{db: db}, nil
}

func (s *DraftSQLiteStore) Load() (entities.OrderDraft, bool, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM order_drafts WHERE id = ?", activeDraftKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return entities.OrderDraft{}, false, nil
	}
	if err != nil {
		return entities.OrderDraft{}, false, fmt.Errorf("failed to read saved draft: %w", err)
	}

	var draft entities.OrderDraft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return entities.OrderDraft{}, false, fmt.Errorf("failed to decode saved draft: %w", err)
	}
	return draft, true, nil
}

func (s *DraftSQLiteStore) Save(draft entities.OrderDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO order_drafts (id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		activeDraftKey, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *DraftSQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM order_drafts WHERE id = ?", activeDraftKey); err != nil {
		return fmt.Errorf("failed to clear saved draft: %w", err)
	}
	return nil
}
