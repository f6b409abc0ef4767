package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"toybox/internal/domain"
)

var csvHeader = []string{"id", "at", "category", "amount_cents", "note"}

// ExportCSV writes every ledger entry as a spreadsheet with a header row.
func (s *Service) ExportCSV(w io.Writer) error {
	expenses, err := s.store.ListExpenses(0, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range expenses {
		row := []string{
			e.ID,
			e.At.UTC().Format(time.RFC3339),
			e.Category.String(),
			strconv.FormatInt(int64(e.Amount), 10),
			e.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads a spreadsheet previously produced by ExportCSV (or hand
// edited) and appends its rows to the ledger. Rows without an id get one.
// Returns the number of imported rows.
func (s *Service) ImportCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	if records[0][0] == csvHeader[0] {
		records = records[1:]
	}

	imported := 0
	for i, row := range records {
		if len(row) != len(csvHeader) {
			return imported, fmt.Errorf("row %d: expected %d fields, got %d", i+1, len(csvHeader), len(row))
		}
		at, err := time.Parse(time.RFC3339, row[1])
		if err != nil {
			return imported, fmt.Errorf("row %d: bad timestamp %q: %w", i+1, row[1], err)
		}
		cents, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return imported, fmt.Errorf("row %d: bad amount %q: %w", i+1, row[3], err)
		}
		if cents <= 0 {
			return imported, fmt.Errorf("row %d: %w", i+1, ErrNonPositiveAmount)
		}
		id := row[0]
		if id == "" {
			id = uuid.NewString()
		}
		e := domain.Expense{
			ID:       id,
			At:       at,
			Category: domain.Category(row[2]),
			Amount:   domain.Money(cents),
			Note:     row[4],
		}
		if e.Category == "" {
			return imported, fmt.Errorf("row %d: %w", i+1, ErrEmptyCategory)
		}
		if err := s.store.AddExpense(e); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
