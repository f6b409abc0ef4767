// Package domain defines the shared types and storage contracts for toybox.
//
// Every toy is independent; what they share is the vocabulary for persisted
// records (expenses, plans, rosters, tax entries) and the interfaces the
// file and SQLite stores implement. Concrete stores live in internal/store;
// per-toy logic lives in its own internal package.
package domain
