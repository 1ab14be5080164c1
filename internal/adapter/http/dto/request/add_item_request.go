package request

import (
	"strings"

	"boq_service/internal/domain/entities"
)

// AddItemRequest carries a selected catalog row plus the requested quantity.
// Selection completeness and quantity positivity are domain rules enforced
// by the usecase, so the fields intentionally carry no binding constraints:
// an incomplete form must surface the domain warning, not a bind error.
type AddItemRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Quantity    float64 `json:"quantity"`
}

func (r AddItemRequest) ToCatalogRow() entities.CatalogRow {
	return entities.CatalogRow{
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
		Unit:        strings.TrimSpace(r.Unit),
		Rate:        r.Rate,
	}
}
