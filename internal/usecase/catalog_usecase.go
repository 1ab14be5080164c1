package usecase

import (
	"context"
	"strings"
	"sync"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

// ICatalogUseCase serves the remote catalog to the BOQ screen: the full row
// set, the distinct category list, and the category/search filtered
// selectable rows.

type ICatalogUseCase interface {
	Rows(ctx context.Context) ([]entities.CatalogRow, error)
	Categories(ctx context.Context) ([]string, error)
	Filter(ctx context.Context, category, search string) ([]entities.CatalogRow, error)
}

// CatalogUseCase fetches the sheet once and serves every later call from the
// in-process copy. A failed fetch is not cached, so the next call retries.
type CatalogUseCase struct {
	source interfaces.ICatalogSource

	mu     sync.Mutex
	rows   []entities.CatalogRow
	loaded bool
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource) *CatalogUseCase {
	return &CatalogUseCase{source: source}
}

func (u *CatalogUseCase) Rows(ctx context.Context) ([]entities.CatalogRow, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.loaded {
		return u.rows, nil
	}
	rows, err := u.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	u.rows = rows
	u.loaded = true
	return rows, nil
}

// Categories returns the distinct categories in order of first occurrence.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	rows, err := u.Rows(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	var categories []string
	for _, row := range rows {
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		categories = append(categories, row.Category)
	}
	return categories, nil
}

// Filter returns the selectable rows for a chosen category, narrowed by a
// case-insensitive substring match on the description. Without a chosen
// category there is nothing to select from.
func (u *CatalogUseCase) Filter(ctx context.Context, category, search string) ([]entities.CatalogRow, error) {
	if category == "" {
		return nil, nil
	}
	rows, err := u.Rows(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	var filtered []entities.CatalogRow
	for _, row := range rows {
		if row.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(row.Description), search) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered, nil
}
