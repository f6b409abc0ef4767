package backtest

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 3)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2, got[2], 1e-12)
	assert.InDelta(t, 3, got[3], 1e-12)
	assert.InDelta(t, 4, got[4], 1e-12)
}

// rampSeries falls then rises, forcing exactly one upward crossover.
func rampSeries() []float64 {
	var prices []float64
	p := 100.0
	for i := 0; i < 40; i++ { // drift down
		p -= 0.5
		prices = append(prices, p)
	}
	for i := 0; i < 60; i++ { // strong rally
		p += 1.0
		prices = append(prices, p)
	}
	return prices
}

func TestRunTradesOnCrossover(t *testing.T) {
	res, err := Run(rampSeries(), DefaultConfig())
	require.NoError(t, err)

	require.NotEmpty(t, res.Trades)
	assert.Equal(t, Buy, res.Trades[0].Side)
	// A rally after the buy must not lose money.
	assert.Greater(t, res.FinalEquity, 10_000.0)
	assert.Greater(t, res.Return, 0.0)
	assert.GreaterOrEqual(t, res.MaxDrawdown, 0.0)
	assert.Less(t, res.MaxDrawdown, 1.0)
}

func TestRunAlternatesSides(t *testing.T) {
	// Falling, rising, falling again: expect buy then sell.
	var prices []float64
	p := 100.0
	for i := 0; i < 40; i++ {
		p -= 0.5
		prices = append(prices, p)
	}
	for i := 0; i < 40; i++ {
		p += 1.0
		prices = append(prices, p)
	}
	for i := 0; i < 40; i++ {
		p -= 1.0
		prices = append(prices, p)
	}

	res, err := Run(prices, DefaultConfig())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Trades), 2)
	for i, tr := range res.Trades {
		want := Buy
		if i%2 == 1 {
			want = Sell
		}
		assert.Equal(t, want, tr.Side, "trade %d", i)
	}
}

func TestRunRejectsShortSeries(t *testing.T) {
	_, err := Run([]float64{1, 2, 3}, DefaultConfig())
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestRunRejectsBadWindows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fast, cfg.Slow = 30, 10
	_, err := Run(rampSeries(), cfg)
	assert.ErrorIs(t, err, ErrBadWindows)
}

func TestRunRejectsBadPrices(t *testing.T) {
	prices := rampSeries()
	prices[5] = -1
	_, err := Run(prices, DefaultConfig())
	assert.ErrorIs(t, err, ErrBadPrice)
}

func TestReadPricesBareColumn(t *testing.T) {
	prices, err := ReadPrices(strings.NewReader("100\n101.5\n99\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101.5, 99}, prices)
}

func TestReadPricesWithHeader(t *testing.T) {
	csv := "date,open,close\n2026-01-02,99,100\n2026-01-03,100,102\n"
	prices, err := ReadPrices(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 102}, prices)
}

func TestReadPricesRejectsJunk(t *testing.T) {
	_, err := ReadPrices(strings.NewReader("date,open\n2026-01-02,99\n"))
	require.Error(t, err)
	if errors.Is(err, ErrBadPrice) {
		t.Fatal("expected a parse error, not a price error")
	}
}
