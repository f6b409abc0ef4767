package ledger

import (
	"errors"
	"fmt"

	"toybox/internal/domain"
)

// ErrInsufficientStock indicates a sale of more units than are held.
var ErrInsufficientStock = errors.New("not enough stock to sell")

// ErrBadQuantity indicates a zero or negative quantity.
var ErrBadQuantity = errors.New("quantity must be positive")

// Inventory is the buy/sell toy: stock per item, average cost basis, and
// realized profit on sales.
type Inventory struct {
	store domain.InventoryStore
}

// NewInventory returns an inventory service backed by the given store.
func NewInventory(s domain.InventoryStore) *Inventory { return &Inventory{store: s} }

// Buy adds qty units at unitPrice, blending the average cost basis.
func (v *Inventory) Buy(name string, qty int, unitPrice domain.Money) (domain.InventoryItem, error) {
	if qty <= 0 {
		return domain.InventoryItem{}, ErrBadQuantity
	}
	if unitPrice <= 0 {
		return domain.InventoryItem{}, ErrNonPositiveAmount
	}

	items, err := v.store.LoadInventory()
	if err != nil {
		return domain.InventoryItem{}, err
	}

	idx := -1
	for i := range items {
		if items[i].Name == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		items = append(items, domain.InventoryItem{Name: name})
		idx = len(items) - 1
	}

	it := &items[idx]
	oldValue := domain.Money(it.Quantity) * it.UnitCost
	newValue := domain.Money(qty) * unitPrice
	it.Quantity += qty
	it.UnitCost = (oldValue + newValue) / domain.Money(it.Quantity)

	if err := v.store.SaveInventory(items); err != nil {
		return domain.InventoryItem{}, err
	}
	return *it, nil
}

// Sell removes qty units at unitPrice and realizes profit against the
// average cost basis. Selling more than held is rejected; stock never goes
// negative.
func (v *Inventory) Sell(name string, qty int, unitPrice domain.Money) (domain.InventoryItem, error) {
	if qty <= 0 {
		return domain.InventoryItem{}, ErrBadQuantity
	}
	if unitPrice <= 0 {
		return domain.InventoryItem{}, ErrNonPositiveAmount
	}

	items, err := v.store.LoadInventory()
	if err != nil {
		return domain.InventoryItem{}, err
	}

	for i := range items {
		if items[i].Name != name {
			continue
		}
		it := &items[i]
		if qty > it.Quantity {
			return domain.InventoryItem{}, fmt.Errorf("%w: have %d, want %d", ErrInsufficientStock, it.Quantity, qty)
		}
		it.Quantity -= qty
		it.Realized += domain.Money(qty) * (unitPrice - it.UnitCost)
		if err := v.store.SaveInventory(items); err != nil {
			return domain.InventoryItem{}, err
		}
		return *it, nil
	}
	return domain.InventoryItem{}, fmt.Errorf("%w: no such item %q", ErrInsufficientStock, name)
}

// Items lists current holdings.
func (v *Inventory) Items() ([]domain.InventoryItem, error) {
	return v.store.LoadInventory()
}
