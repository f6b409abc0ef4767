// Package backtest implements the moving-average crossover backtester.
//
// Strategy: long when the fast SMA is above the slow SMA, flat otherwise;
// trades fire on crossover sign changes. Position size is capital·risk
// divided by recent volatility, capped at available capital. The package
// reports the trade list, final equity, return, and max drawdown.
package backtest
