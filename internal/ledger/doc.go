// Package ledger implements the money toys: the expense tracker and its
// monthly budget summary, CSV spreadsheet export/import, the buy/sell
// inventory game, and the encrypted tax record keeper.
//
// Amounts are integer cents (domain.Money) end to end; the only float math
// is display formatting and the burn-rate projection.
package ledger
