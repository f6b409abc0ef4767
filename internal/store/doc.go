// Package store provides file-based persistence for toybox data.
//
// It contains concrete implementations of the domain storage interfaces.
// Tracker data (plans, chores, food votes, bus rosters, inventory, seats)
// is serialised as JSON on disk; the expense ledger lives in SQLite; tax
// records are kept in a passphrase-encrypted vault. All methods are
// concurrency-safe via internal locking. Stored files live under the
// configured home directory, typically ~/.toybox.
//
// The package includes stores for:
//   - Day plans, chores, and food votes (FileStore)
//   - Bus routes and theater seats (FileStore)
//   - Buy/sell inventory (FileStore)
//   - Expenses and budgets (LedgerStore, SQLite)
//   - Tax records (Vault, scrypt + ChaCha20-Poly1305)
package store
