package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/domain"
	"toybox/internal/ledger"
	"toybox/internal/store"
)

func newTestInventory(t *testing.T) *ledger.Inventory {
	t.Helper()
	return ledger.NewInventory(store.NewFileStore(t.TempDir()))
}

func TestInventoryBuyBlendsCost(t *testing.T) {
	inv := newTestInventory(t)

	it, err := inv.Buy("widget", 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, it.Quantity)
	assert.Equal(t, domain.Money(100), it.UnitCost)

	// 10 @ 1.00 + 10 @ 2.00 averages to 1.50.
	it, err = inv.Buy("widget", 10, 200)
	require.NoError(t, err)
	assert.Equal(t, 20, it.Quantity)
	assert.Equal(t, domain.Money(150), it.UnitCost)
}

func TestInventorySellRealizesProfit(t *testing.T) {
	inv := newTestInventory(t)

	_, err := inv.Buy("widget", 10, 100)
	require.NoError(t, err)

	it, err := inv.Sell("widget", 4, 250)
	require.NoError(t, err)
	assert.Equal(t, 6, it.Quantity)
	// 4 units sold at 1.50 over cost.
	assert.Equal(t, domain.Money(600), it.Realized)
}

func TestInventorySellNeverGoesNegative(t *testing.T) {
	inv := newTestInventory(t)

	_, err := inv.Buy("widget", 2, 100)
	require.NoError(t, err)

	_, err = inv.Sell("widget", 3, 100)
	assert.ErrorIs(t, err, ledger.ErrInsufficientStock)

	_, err = inv.Sell("gadget", 1, 100)
	assert.ErrorIs(t, err, ledger.ErrInsufficientStock)

	items, err := inv.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestTaxKeeperValidates(t *testing.T) {
	keeper := ledger.NewTaxKeeper(store.NewVault(t.TempDir()))

	_, err := keeper.Add("pass", 2026, "refund", 100, "")
	assert.ErrorIs(t, err, ledger.ErrBadTaxKind)

	_, err = keeper.Add("pass", 1776, "income", 100, "")
	assert.ErrorIs(t, err, ledger.ErrBadTaxYear)

	r, err := keeper.Add("pass", 2026, "income", 50_000_00, "W-2")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)

	got, err := keeper.List("pass", 2026)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "W-2", got[0].Reference)
}
