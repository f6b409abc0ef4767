package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toybox/internal/domain"
)

// Tax record kinds accepted by the vault.
var taxKinds = map[string]bool{"income": true, "deduction": true, "payment": true}

// ErrBadTaxKind indicates an unknown record kind.
var ErrBadTaxKind = errors.New(`kind must be "income", "deduction", or "payment"`)

// ErrBadTaxYear indicates an implausible tax year.
var ErrBadTaxYear = errors.New("year must be between 1900 and 2100")

// TaxKeeper wraps the encrypted vault with validation.
type TaxKeeper struct {
	store domain.TaxStore
	now   func() time.Time
}

// NewTaxKeeper returns a tax keeper backed by the given vault.
func NewTaxKeeper(s domain.TaxStore) *TaxKeeper {
	return &TaxKeeper{store: s, now: time.Now}
}

// Add validates and stores one tax record under the passphrase.
func (k *TaxKeeper) Add(passphrase string, year int, kind string, amount domain.Money, reference string) (domain.TaxRecord, error) {
	if !taxKinds[kind] {
		return domain.TaxRecord{}, fmt.Errorf("%w: %q", ErrBadTaxKind, kind)
	}
	if year < 1900 || year > 2100 {
		return domain.TaxRecord{}, ErrBadTaxYear
	}
	if amount <= 0 {
		return domain.TaxRecord{}, ErrNonPositiveAmount
	}

	r := domain.TaxRecord{
		ID:        uuid.NewString(),
		Year:      year,
		Kind:      kind,
		Amount:    amount,
		Reference: reference,
		AddedAt:   k.now().UTC(),
	}
	if err := k.store.AddRecord(passphrase, r); err != nil {
		return domain.TaxRecord{}, err
	}
	return r, nil
}

// List returns records for year (0 means all), oldest first.
func (k *TaxKeeper) List(passphrase string, year int) ([]domain.TaxRecord, error) {
	return k.store.ListRecords(passphrase, year)
}
