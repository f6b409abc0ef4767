package chance

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.?/"

	minPasswordLength = 4
)

// ErrPasswordTooShort is returned when the requested length cannot cover
// one character from each enabled class.
var ErrPasswordTooShort = fmt.Errorf("password length must be at least %d", minPasswordLength)

// ErrNoClasses is returned when every character class is disabled.
var ErrNoClasses = errors.New("at least one character class must be enabled")

// PasswordOptions selects the character classes to draw from.
type PasswordOptions struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions enables every class at 16 characters.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: 16, Lower: true, Upper: true, Digits: true, Symbols: true}
}

// GeneratePassword draws a password from crypto/rand. Each enabled class is
// guaranteed at least one character; positions are then shuffled so the
// guaranteed characters do not cluster at the front.
func GeneratePassword(opts PasswordOptions) (string, error) {
	var classes []string
	if opts.Lower {
		classes = append(classes, lowerChars)
	}
	if opts.Upper {
		classes = append(classes, upperChars)
	}
	if opts.Digits {
		classes = append(classes, digitChars)
	}
	if opts.Symbols {
		classes = append(classes, symbolChars)
	}
	if len(classes) == 0 {
		return "", ErrNoClasses
	}
	if opts.Length < minPasswordLength || opts.Length < len(classes) {
		return "", ErrPasswordTooShort
	}

	all := ""
	for _, c := range classes {
		all += c
	}

	out := make([]byte, 0, opts.Length)
	for _, c := range classes {
		ch, err := pick(c)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}
	for len(out) < opts.Length {
		ch, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	// Fisher-Yates with crypto/rand indices.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}
	return string(out), nil
}

func pick(set string) (byte, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("read random index: %w", err)
	}
	return set[i.Int64()], nil
}
