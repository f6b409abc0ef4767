// Package commands defines the toybox CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - coin, dice, rand, password, name, loot, shuffle   randomness toys
//   - pi                                                Monte Carlo π estimator
//   - budget, tax, inventory                            money trackers
//   - backtest, covid, rental                           market and notebook analyses
//   - fry, plates, ship, donut                          text simulators
//   - plan, chores, foods, bus, grade, bmi, words       daily trackers
//   - calc, seats                                       interactive widgets
//
// # Implementation
//
// The root command loads config and builds a dependency graph (stores,
// services, logger) before any subcommand runs, so handlers share one app
// context rooted at the --home directory.
package commands
