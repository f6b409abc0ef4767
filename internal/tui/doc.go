// Package tui holds the interactive widgets: the four-function calculator
// and the movie-theater seating demo. Both are bubbletea models styled with
// lipgloss; their Update logic is pure so tests can drive them with key
// messages directly.
package tui
