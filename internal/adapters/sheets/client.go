// Package sheets fetches attendance rows from a published spreadsheet's CSV
// export URL.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"hallbooking/internal/domain"
)

type csvHTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that downloads and parses a CSV document.
func NewHTTPFetcher(client *http.Client) domain.AttendanceSheetFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &csvHTTPFetcher{client: client}
}

func (f *csvHTTPFetcher) FetchRows(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	// Imports tolerate ragged rows; the service validates column counts.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet csv: %w", err)
	}
	return rows, nil
}
