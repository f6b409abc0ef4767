package backtest

import (
	"errors"
	"fmt"
	"math"
)

// ErrSeriesTooShort indicates fewer prices than the slow window needs.
var ErrSeriesTooShort = errors.New("price series shorter than slow window")

// ErrBadWindows indicates fast/slow windows that make no sense.
var ErrBadWindows = errors.New("windows must be positive and fast < slow")

// ErrBadPrice indicates a non-positive price in the series.
var ErrBadPrice = errors.New("prices must be positive")

// Config tunes the crossover strategy.
type Config struct {
	Fast      int     // fast SMA window
	Slow      int     // slow SMA window
	Capital   float64 // starting cash
	Risk      float64 // fraction of capital risked per unit volatility
	VolWindow int     // lookback for the volatility estimate
}

// DefaultConfig mirrors the usual demo parameters: 10/30 crossover on
// $10k with 2% risk.
func DefaultConfig() Config {
	return Config{Fast: 10, Slow: 30, Capital: 10_000, Risk: 0.02, VolWindow: 20}
}

// Side of a trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Trade is one fill produced by the backtest.
type Trade struct {
	Index  int // bar index in the price series
	Side   Side
	Price  float64
	Shares float64
}

// Result summarises a backtest run.
type Result struct {
	Trades      []Trade
	FinalEquity float64
	Return      float64 // fractional, e.g. 0.12 for +12%
	MaxDrawdown float64 // fractional peak-to-trough, >= 0
}

// SMA computes the simple moving average of window w ending at each index.
// The first w-1 entries are NaN, matching the rolling-mean convention.
func SMA(prices []float64, w int) []float64 {
	out := make([]float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= w {
			sum -= prices[i-w]
		}
		if i >= w-1 {
			out[i] = sum / float64(w)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// volatility is the standard deviation of simple returns over the last w
// bars ending at index i. Falls back to a small floor so sizing never
// divides by zero on a flat series.
func volatility(prices []float64, i, w int) float64 {
	lo := i - w
	if lo < 1 {
		lo = 1
	}
	var rets []float64
	for j := lo; j <= i; j++ {
		rets = append(rets, prices[j]/prices[j-1]-1)
	}
	if len(rets) == 0 {
		return 1e-4
	}
	mean := 0.0
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))
	var sq float64
	for _, r := range rets {
		sq += (r - mean) * (r - mean)
	}
	sd := math.Sqrt(sq / float64(len(rets)))
	if sd < 1e-4 {
		sd = 1e-4
	}
	return sd
}

// Run executes the crossover strategy over the price series.
func Run(prices []float64, cfg Config) (Result, error) {
	if cfg.Fast <= 0 || cfg.Slow <= 0 || cfg.Fast >= cfg.Slow {
		return Result{}, ErrBadWindows
	}
	if len(prices) < cfg.Slow+1 {
		return Result{}, fmt.Errorf("%w: have %d, need %d", ErrSeriesTooShort, len(prices), cfg.Slow+1)
	}
	for _, p := range prices {
		if p <= 0 || math.IsNaN(p) {
			return Result{}, ErrBadPrice
		}
	}
	if cfg.Capital <= 0 {
		return Result{}, errors.New("capital must be positive")
	}

	fast := SMA(prices, cfg.Fast)
	slow := SMA(prices, cfg.Slow)

	cash := cfg.Capital
	shares := 0.0
	peak := cfg.Capital
	maxDD := 0.0
	var trades []Trade

	for i := cfg.Slow; i < len(prices); i++ {
		prevDiff := fast[i-1] - slow[i-1]
		diff := fast[i] - slow[i]
		price := prices[i]

		crossedUp := prevDiff <= 0 && diff > 0
		crossedDown := prevDiff >= 0 && diff < 0

		if crossedUp && shares == 0 {
			vol := volatility(prices, i, cfg.VolWindow)
			notional := cfg.Capital * cfg.Risk / vol
			if notional > cash {
				notional = cash
			}
			qty := notional / price
			if qty > 0 {
				shares = qty
				cash -= qty * price
				trades = append(trades, Trade{Index: i, Side: Buy, Price: price, Shares: qty})
			}
		} else if crossedDown && shares > 0 {
			cash += shares * price
			trades = append(trades, Trade{Index: i, Side: Sell, Price: price, Shares: shares})
			shares = 0
		}

		equity := cash + shares*price
		if equity > peak {
			peak = equity
		}
		if dd := (peak - equity) / peak; dd > maxDD {
			maxDD = dd
		}
	}

	final := cash + shares*prices[len(prices)-1]
	return Result{
		Trades:      trades,
		FinalEquity: final,
		Return:      final/cfg.Capital - 1,
		MaxDrawdown: maxDD,
	}, nil
}
