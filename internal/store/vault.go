package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"toybox/internal/domain"
)

const vaultFile = "tax.enc"

// ErrVaultLocked is returned when the passphrase does not open the vault.
var ErrVaultLocked = errors.New("wrong passphrase or corrupt vault")

// Vault stores tax records encrypted on disk. A fresh key is derived from
// the passphrase with scrypt on every write, so the nonce can stay fixed.
type Vault struct {
	dir string
	mu  sync.Mutex
}

// NewVault returns a vault rooted at dir.
func NewVault(dir string) *Vault { return &Vault{dir: dir} }

func (v *Vault) AddRecord(passphrase string, r domain.TaxRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.load(passphrase)
	if err != nil {
		return err
	}
	records = append(records, r)
	return v.save(passphrase, records)
}

// ListRecords returns records for year, or all records when year is 0,
// ordered oldest first.
func (v *Vault) ListRecords(passphrase string, year int) ([]domain.TaxRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.load(passphrase)
	if err != nil {
		return nil, err
	}
	out := records[:0:0]
	for _, r := range records {
		if year == 0 || r.Year == year {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out, nil
}

func (v *Vault) path() string { return filepath.Join(v.dir, vaultFile) }

func (v *Vault) load(passphrase string) ([]domain.TaxRecord, error) {
	blob, err := os.ReadFile(v.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	raw, err := decrypt(passphrase, blob)
	if err != nil {
		return nil, ErrVaultLocked
	}
	var records []domain.TaxRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (v *Vault) save(passphrase string, records []domain.TaxRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	blob, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	tmp := v.path() + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, v.path())
}

// scrypt envelope (parameters fixed here; tune as needed)
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

type envelope struct {
	Salt []byte
	CT   []byte
}

func encrypt(passphrase string, plaintext []byte, N, r, p int) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, CT: ct})
}

func decrypt(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), env.Salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	return aead.Open(nil, nonce, env.CT, env.Salt)
}

// Compile-time assertion that Vault implements domain.TaxStore.
var _ domain.TaxStore = (*Vault)(nil)
