package backtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPrices loads close prices from CSV. Accepts either a bare column of
// prices or rows with a header where one column is named "close" (any
// case); in the latter shape that column is used.
func ReadPrices(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty price file")
	}

	col := 0
	start := 0
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		// Header row: find the close column.
		start = 1
		col = -1
		for i, name := range records[0] {
			if strings.EqualFold(strings.TrimSpace(name), "close") {
				col = i
				break
			}
		}
		if col == -1 {
			return nil, fmt.Errorf(`header has no "close" column: %v`, records[0])
		}
	}

	prices := make([]float64, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		if col >= len(records[i]) {
			return nil, fmt.Errorf("row %d: missing column %d", i+1, col)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(records[i][col]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", i+1, records[i][col], err)
		}
		prices = append(prices, p)
	}
	return prices, nil
}
