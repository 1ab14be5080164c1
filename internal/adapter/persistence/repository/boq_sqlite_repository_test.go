package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/infrastructure/database"
)

func newTestRepo(t *testing.T) *BoqSqliteRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "boq.db"), 1, 1, time.Minute)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.MigrateSQLite(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewBoqSqliteRepository(db)
}

func testLedger() []entities.LineItem {
	return []entities.LineItem{
		entities.NewLineItem(entities.CatalogRow{Category: "Civil", Description: "Cement bag 50kg", Unit: "bag", Rate: 350}, 10),
		entities.NewLineItem(entities.CatalogRow{Category: "Electrical", Description: "Copper wire 2.5mm", Unit: "m", Rate: 42}, 100),
	}
}

func TestBoqSqliteRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "alice@hagerstone.com", testLedger()); err != nil {
		t.Fatalf("save: %v", err)
	}

	items, err := repo.Load(ctx, "alice@hagerstone.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Cement bag 50kg" || items[1].Description != "Copper wire 2.5mm" {
		t.Fatalf("order not preserved: %+v", items)
	}
	if items[0].Amount != 3500 {
		t.Fatalf("expected amount 3500, got %v", items[0].Amount)
	}
}

func TestBoqSqliteRepository_LoadAbsentOwner(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.Load(context.Background(), "nobody@outside.org")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected nil for absent owner, got %v", items)
	}
}

func TestBoqSqliteRepository_SaveReplacesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "alice@hagerstone.com", testLedger()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	replacement := []entities.LineItem{entities.NewLineItem(entities.CatalogRow{Category: "Plumbing", Description: "PVC pipe 1in", Unit: "m", Rate: 80}, 5)}
	if err := repo.Save(ctx, "alice@hagerstone.com", replacement); err != nil {
		t.Fatalf("second save: %v", err)
	}

	items, err := repo.Load(ctx, "alice@hagerstone.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Description != "PVC pipe 1in" {
		t.Fatalf("expected the replacement ledger, got %+v", items)
	}
}

func TestBoqSqliteRepository_EmptySaveClearsRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "alice@hagerstone.com", testLedger()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, "alice@hagerstone.com", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}

	items, err := repo.Load(ctx, "alice@hagerstone.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected cleared ledger, got %v", items)
	}

	// Clearing again is a no-op.
	if err := repo.Save(ctx, "alice@hagerstone.com", nil); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestBoqSqliteRepository_CorruptValueIsDiscarded(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO boq_ledgers(owner_email,data,updated_at) VALUES(?,?,?)`,
		"alice@hagerstone.com", "{not json", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	items, err := repo.Load(ctx, "alice@hagerstone.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected empty ledger for corrupt value, got %v", items)
	}

	// The bad row is gone; a later save starts clean.
	var count int
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boq_ledgers`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected corrupt row to be deleted, found %d rows", count)
	}
}

func TestBoqSqliteRepository_OwnersAreIsolated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "alice@hagerstone.com", testLedger()); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	if err := repo.Save(ctx, "bob@outside.org", testLedger()[:1]); err != nil {
		t.Fatalf("save bob: %v", err)
	}
	if err := repo.Save(ctx, "bob@outside.org", nil); err != nil {
		t.Fatalf("clear bob: %v", err)
	}

	items, err := repo.Load(ctx, "alice@hagerstone.com")
	if err != nil {
		t.Fatalf("load alice: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("alice's ledger must survive bob's clear, got %+v", items)
	}
}
