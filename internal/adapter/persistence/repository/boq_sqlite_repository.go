package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

// BoqSqliteRepository stores each owner's ledger as a single JSON document
// in a local sqlite file, keeping the original browser-storage semantics:
// one value per owner, removed when the ledger empties, silently discarded
// when it no longer parses.

type BoqSqliteRepository struct {
	db *sql.DB
}

var _ interfaces.IBoqLedgerRepository = (*BoqSqliteRepository)(nil)

func NewBoqSqliteRepository(db *sql.DB) *BoqSqliteRepository {
	return &BoqSqliteRepository{db: db}
}

func (r *BoqSqliteRepository) Load(ctx context.Context, ownerEmail string) ([]entities.LineItem, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM boq_ledgers WHERE owner_email = ?`, ownerEmail,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []entities.LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		// Corrupt stored ledger: treat as no data and drop the bad value.
		_, _ = r.db.ExecContext(ctx, `DELETE FROM boq_ledgers WHERE owner_email = ?`, ownerEmail)
		return nil, nil
	}
	return items, nil
}

func (r *BoqSqliteRepository) Save(ctx context.Context, ownerEmail string, items []entities.LineItem) error {
	if len(items) == 0 {
		_, err := r.db.ExecContext(ctx, `DELETE FROM boq_ledgers WHERE owner_email = ?`, ownerEmail)
		return err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO boq_ledgers(owner_email,data,updated_at) VALUES(?,?,?)
		 ON CONFLICT(owner_email) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`,
		ownerEmail, string(data), time.Now().UTC(),
	)
	return err
}
