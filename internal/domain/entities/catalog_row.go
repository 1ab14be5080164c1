package entities

// CatalogRow is one priced item offered by the remote catalog sheet.
//
// Rows are read-only: the service never writes back to the sheet, and the
// full catalog is refetched rather than persisted.

type CatalogRow struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
}
