// Package montecarlo estimates π by uniform sampling of the unit square.
//
// The estimate 4·inside/n converges in probability to π as n grows; the
// package reports the estimate together with its absolute error and a 95%
// confidence half-width so callers can see the convergence rate.
package montecarlo
