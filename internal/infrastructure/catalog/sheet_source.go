package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

// sheetRow mirrors the column names the published spreadsheet endpoint
// returns for each row.
type sheetRow struct {
	Category    string  `json:"Category"`
	Description string  `json:"Description"`
	Unit        string  `json:"Unit"`
	Rate        float64 `json:"Rate"`
}

// SheetSource fetches the priced catalog from the published spreadsheet
// endpoint: a plain GET returning the full row list, no auth, no paging.

type SheetSource struct {
	url    string
	client *http.Client
}

var _ interfaces.ICatalogSource = (*SheetSource)(nil)

func NewSheetSource(url string, timeout time.Duration) *SheetSource {
	return &SheetSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *SheetSource) Fetch(ctx context.Context) ([]entities.CatalogRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog sheet: unexpected status %d", resp.StatusCode)
	}

	var raw []sheetRow
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog sheet: %w", err)
	}

	rows := make([]entities.CatalogRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, entities.CatalogRow{
			Category:    r.Category,
			Description: r.Description,
			Unit:        r.Unit,
			Rate:        r.Rate,
		})
	}
	return rows, nil
}
