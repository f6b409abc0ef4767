// Package words implements the word sorter.
package words
