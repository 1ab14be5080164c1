package request

import (
	"errors"
	"strconv"
	"strings"

	"boq_service/internal/domain/entities"
)

var ErrInvalidNumericField = errors.New("invalid numeric field")

// EditItemRequest is the edit draft for one ledger line. Rate and Quantity
// arrive as strings so a non-numeric value can be rejected per field with
// the field's name, mirroring the inline edit row it serves.
type EditItemRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Rate        string `json:"rate"`
	Quantity    string `json:"quantity"`
}

// ResolveLineItem parses the draft into a line item. On a non-numeric rate
// or quantity it reports the offending field name alongside
// ErrInvalidNumericField; the draft stays unsaved in that case. The amount
// is left for the usecase to derive.
func (r EditItemRequest) ResolveLineItem() (entities.LineItem, string, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(r.Rate), 64)
	if err != nil {
		return entities.LineItem{}, "Rate", ErrInvalidNumericField
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(r.Quantity), 64)
	if err != nil {
		return entities.LineItem{}, "Quantity", ErrInvalidNumericField
	}

	return entities.LineItem{
		CatalogRow: entities.CatalogRow{
			Category:    strings.TrimSpace(r.Category),
			Description: strings.TrimSpace(r.Description),
			Unit:        strings.TrimSpace(r.Unit),
			Rate:        rate,
		},
		Quantity: quantity,
	}, "", nil
}
