package words

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Order selects how words are sorted.
type Order string

const (
	Alphabetical Order = "alpha"
	ByLength     Order = "length"
	ByFrequency  Order = "freq"
)

// ErrUnknownOrder indicates an unsupported sort order.
var ErrUnknownOrder = errors.New(`order must be "alpha", "length", or "freq"`)

// Options tunes a sort.
type Options struct {
	Order  Order
	Unique bool // drop duplicates (case-insensitive) before sorting
}

// Sort returns the words in the requested order without mutating the input.
// Comparison is case-insensitive; ties fall back to alphabetical order.
func Sort(in []string, opts Options) ([]string, error) {
	words := append([]string(nil), in...)

	freq := map[string]int{}
	for _, w := range words {
		freq[strings.ToLower(w)]++
	}

	if opts.Unique {
		seen := map[string]bool{}
		kept := words[:0]
		for _, w := range words {
			k := strings.ToLower(w)
			if !seen[k] {
				seen[k] = true
				kept = append(kept, w)
			}
		}
		words = kept
	}

	alpha := func(a, b string) bool {
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	}

	switch opts.Order {
	case Alphabetical, "":
		sort.Slice(words, func(i, j int) bool { return alpha(words[i], words[j]) })
	case ByLength:
		sort.Slice(words, func(i, j int) bool {
			if len(words[i]) != len(words[j]) {
				return len(words[i]) < len(words[j])
			}
			return alpha(words[i], words[j])
		})
	case ByFrequency:
		sort.Slice(words, func(i, j int) bool {
			fi, fj := freq[strings.ToLower(words[i])], freq[strings.ToLower(words[j])]
			if fi != fj {
				return fi > fj
			}
			return alpha(words[i], words[j])
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, opts.Order)
	}
	return words, nil
}

// Fields splits free text into words, trimming punctuation the way the
// original sorter did.
func Fields(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ';', '.', '!', '?', '"', '(', ')':
			return true
		}
		return false
	})
}
