package interfaces

import (
	"context"

	"boq_service/internal/domain/entities"
)

// IBoqLedgerRepository abstracts the durable local store for a user's bill
// of quantities.
//
// Contract carried over from the original browser-storage design:
//   - Save with an empty ledger removes the stored value entirely.
//   - Load of a corrupt stored value discards it and returns an empty
//     ledger, never an error.

type IBoqLedgerRepository interface {
	Load(ctx context.Context, ownerEmail string) ([]entities.LineItem, error)
	Save(ctx context.Context, ownerEmail string, items []entities.LineItem) error
}
