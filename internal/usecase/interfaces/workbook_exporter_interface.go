package interfaces

import "boq_service/internal/domain/entities"

// IWorkbookExporter serializes a ledger into a downloadable spreadsheet.
type IWorkbookExporter interface {
	// Write renders one sheet with the ledger's visible columns in order
	// (Category, Description, Unit, Rate, Quantity, Amount), one row per
	// line item, and returns the encoded workbook.
	Write(items []entities.LineItem) ([]byte, error)
}
