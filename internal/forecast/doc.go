// Package forecast implements the two notebook-style analyses: a case-count
// forecaster that fits exponential growth by least squares on log counts,
// and a rental-property dashboard computing the standard investor ratios.
package forecast
