package response

import "boq_service/internal/domain/entities"

type LineItemResponse struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// LedgerResponse is the BOQ table: the ordered lines plus the grand total,
// which is always the sum of the lines as rendered.
type LedgerResponse struct {
	Items []LineItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func FromLineItems(items []entities.LineItem, total float64) LedgerResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			Category:    it.Category,
			Description: it.Description,
			Unit:        it.Unit,
			Rate:        it.Rate,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		})
	}
	return LedgerResponse{Items: out, Total: total}
}
