package usecase

import (
	"context"
	"errors"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

var (
	ErrMissingSelection = errors.New("category and item must be selected")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrItemNotFound     = errors.New("line item not found")
)

// IBoqUseCase exposes the bill-of-quantities ledger operations. Every
// mutation persists the full ledger before returning, so a reload
// immediately after a mutation observes it.

type IBoqUseCase interface {
	Items(ctx context.Context, ownerEmail string) ([]entities.LineItem, float64, error)
	Add(ctx context.Context, ownerEmail string, row entities.CatalogRow, quantity float64) ([]entities.LineItem, error)
	Edit(ctx context.Context, ownerEmail string, index int, item entities.LineItem) ([]entities.LineItem, error)
	Remove(ctx context.Context, ownerEmail string, index int) ([]entities.LineItem, error)
	Clear(ctx context.Context, ownerEmail string) error
	Export(ctx context.Context, ownerEmail string) ([]byte, error)
}

type BoqUseCase struct {
	repo     interfaces.IBoqLedgerRepository
	exporter interfaces.IWorkbookExporter
}

var _ IBoqUseCase = (*BoqUseCase)(nil)

func NewBoqUseCase(repo interfaces.IBoqLedgerRepository, exporter interfaces.IWorkbookExporter) *BoqUseCase {
	return &BoqUseCase{repo: repo, exporter: exporter}
}

// Items rehydrates the owner's ledger and its grand total. The total is
// always the sum of the current lines, never a cached value.
func (u *BoqUseCase) Items(ctx context.Context, ownerEmail string) ([]entities.LineItem, float64, error) {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, 0, ErrInvalidEmail
	}
	items, err := u.repo.Load(ctx, ownerEmail)
	if err != nil {
		return nil, 0, err
	}
	return items, entities.LedgerTotal(items), nil
}

// Add appends a line item derived from the selected catalog row. The
// selection must be complete and the quantity positive; a failed add leaves
// the ledger untouched.
func (u *BoqUseCase) Add(ctx context.Context, ownerEmail string, row entities.CatalogRow, quantity float64) ([]entities.LineItem, error) {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, ErrInvalidEmail
	}
	if row.Category == "" || row.Description == "" {
		return nil, ErrMissingSelection
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	items, err := u.repo.Load(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	items = append(items, entities.NewLineItem(row, quantity))
	if err := u.repo.Save(ctx, ownerEmail, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Edit replaces the item at index with the supplied draft, re-deriving the
// amount from the draft's rate and quantity. Numeric validation happens at
// the boundary; the edit path deliberately does not re-check positivity.
func (u *BoqUseCase) Edit(ctx context.Context, ownerEmail string, index int, item entities.LineItem) ([]entities.LineItem, error) {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, ErrInvalidEmail
	}
	items, err := u.repo.Load(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, ErrItemNotFound
	}

	item.Recompute()
	items[index] = item
	if err := u.repo.Save(ctx, ownerEmail, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the item at index, preserving the order of the rest.
func (u *BoqUseCase) Remove(ctx context.Context, ownerEmail string, index int) ([]entities.LineItem, error) {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, ErrInvalidEmail
	}
	items, err := u.repo.Load(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, ErrItemNotFound
	}

	items = append(items[:index], items[index+1:]...)
	if err := u.repo.Save(ctx, ownerEmail, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the ledger. Saving an empty ledger removes the stored value,
// so clearing an already-empty ledger is a no-op that leaves nothing behind.
func (u *BoqUseCase) Clear(ctx context.Context, ownerEmail string) error {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return ErrInvalidEmail
	}
	return u.repo.Save(ctx, ownerEmail, nil)
}

// Export serializes the current ledger into a spreadsheet workbook.
func (u *BoqUseCase) Export(ctx context.Context, ownerEmail string) ([]byte, error) {
	ownerEmail = normalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, ErrInvalidEmail
	}
	items, err := u.repo.Load(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	return u.exporter.Write(items)
}
