package interfaces

import (
	"context"

	"boq_service/internal/domain/entities"
)

// ICatalogSource abstracts the remote spreadsheet endpoint serving priced
// catalog rows. Read-only, unauthenticated, no pagination.
type ICatalogSource interface {
	Fetch(ctx context.Context) ([]entities.CatalogRow, error)
}
