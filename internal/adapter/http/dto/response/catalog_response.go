package response

import "boq_service/internal/domain/entities"

type CatalogRowResponse struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
}

// CatalogResponse carries the distinct category list (first-occurrence
// order) and the rows matching the current category/search selection.
type CatalogResponse struct {
	Categories []string             `json:"categories"`
	Items      []CatalogRowResponse `json:"items"`
}

func FromCatalog(categories []string, rows []entities.CatalogRow) CatalogResponse {
	items := make([]CatalogRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, CatalogRowResponse{
			Category:    row.Category,
			Description: row.Description,
			Unit:        row.Unit,
			Rate:        row.Rate,
		})
	}
	return CatalogResponse{Categories: categories, Items: items}
}
