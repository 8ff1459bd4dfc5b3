package repository

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"garden_manager/internal/domain/entities"

	_ "github.com/mattn/go-sqlite3"
)

func openTestStore(t *testing.T) *DraftSQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewDraftSQLiteStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestDraftSQLiteStore_LoadEmpty(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no saved draft")
	}
}

func TestDraftSQLiteStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	draft := entities.OrderDraft{
		Name:        "Spring planting",
		Description: "Front beds",
		Items: []entities.OrderLineItem{
			{ProductID: "p1", ProductName: "Rose Bush", Price: decimal.NewFromFloat(12.50), Quantity: 2},
			{ProductID: "p2", ProductName: "Trowel", Price: decimal.NewFromFloat(7.99), Quantity: 0},
		},
	}
	if err := store.Save(draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a saved draft")
	}
	if loaded.Name != "Spring planting" || len(loaded.Items) != 2 {
		t.Fatalf("unexpected draft: %+v", loaded)
	}
	if !loaded.Items[0].Price.Equal(decimal.NewFromFloat(12.50)) {
		t.Fatalf("unexpected price: %s", loaded.Items[0].Price)
	}
	if loaded.Items[1].Quantity != 0 {
		t.Fatalf("expected zero quantity line to survive, got %d", loaded.Items[1].Quantity)
	}
}

func TestDraftSQLiteStore_SaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(entities.OrderDraft{Name: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(entities.OrderDraft{Name: "second"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("unexpected load result: ok=%v err=%v", ok, err)
	}
	if loaded.Name != "second" {
		t.Fatalf("expected latest draft, got %q", loaded.Name)
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM order_drafts").Scan(&count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row, got %d", count)
	}
}

func TestDraftSQLiteStore_Clear(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(entities.OrderDraft{Name: "doomed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("expected clearing an empty store to succeed, got %v", err)
	}

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("expected empty store after clear: ok=%v err=%v", ok, err)
	}
}
