package ledger_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/domain"
	"toybox/internal/ledger"
	"toybox/internal/store"
)

func newTestService(t *testing.T, now time.Time) *ledger.Service {
	t.Helper()
	ls, err := store.NewLedgerStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ls.Close() })
	return ledger.NewAt(ls, func() time.Time { return now })
}

func TestAddExpenseValidates(t *testing.T) {
	svc := newTestService(t, time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))

	_, err := svc.AddExpense("food", 0, "")
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)

	_, err = svc.AddExpense("", 100, "")
	assert.ErrorIs(t, err, ledger.ErrEmptyCategory)

	e, err := svc.AddExpense("food", 1250, "lunch")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, domain.Money(1250), e.Amount)
}

func TestSetBudgetValidates(t *testing.T) {
	svc := newTestService(t, time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, svc.SetBudget("", 10_000), ledger.ErrEmptyCategory)
	assert.ErrorIs(t, svc.SetBudget("food", 0), ledger.ErrNonPositiveAmount)
	require.NoError(t, svc.SetBudget("food", 50_000))
}

func TestSummaryAggregatesAndProjects(t *testing.T) {
	// Mid-month clock: 15 elapsed days of a 31-day month.
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.AddExpense("food", 30_00, "groceries")
	require.NoError(t, err)
	_, err = svc.AddExpense("food", 15_00, "lunch")
	require.NoError(t, err)
	_, err = svc.AddExpense("transit", 45_00, "monthly pass")
	require.NoError(t, err)
	require.NoError(t, svc.SetBudget("food", 60_00))

	ov, err := svc.Summary(2026, time.August)
	require.NoError(t, err)

	assert.Equal(t, domain.Money(90_00), ov.Total)
	require.Len(t, ov.ByCategory, 2)
	// Ties on amount sort by name; here both categories total 45.00.
	assert.Equal(t, "food", ov.ByCategory[0].Name)
	assert.Equal(t, domain.Money(45_00), ov.ByCategory[0].Amount)

	require.Len(t, ov.Budgets, 1)
	assert.Equal(t, domain.Money(15_00), ov.Budgets[0].Remaining)

	assert.InDelta(t, 90.0/15.0, ov.DailyBurnRate, 1e-9)
	assert.InDelta(t, 90.0/15.0*31.0, ov.ProjectedMonthly, 1e-9)
	assert.Equal(t, 16, ov.DaysRemaining)
}

func TestCSVRoundTrip(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	src := newTestService(t, now)

	_, err := src.AddExpense("food", 1250, "lunch")
	require.NoError(t, err)
	_, err = src.AddExpense("rent", 90000, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.ExportCSV(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "id,at,category,amount_cents,note"))

	dst := newTestService(t, now)
	n, err := dst.ImportCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ov, err := dst.Summary(2026, time.August)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(91250), ov.Total)
}

func TestImportCSVRejectsBadRows(t *testing.T) {
	svc := newTestService(t, time.Now())

	bad := "id,at,category,amount_cents,note\n,2026-08-01T00:00:00Z,food,-5,oops\n"
	_, err := svc.ImportCSV(strings.NewReader(bad))
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
}
