// Package sim holds the text simulators: egg frying, license-plate
// detection, the shipping supply-chain toy, and the ASCII donut renderer.
//
// Each simulator advances in discrete steps and is deterministic for a
// given seed so runs can be replayed.
package sim
