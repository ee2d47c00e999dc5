// Package store provides the backpack item stores: a fixed-capacity array
// store and a singly linked store.
package store

import (
	"errors"

	"github.com/vyrodovalexey/backpack/internal/model"
)

// Store errors.
var (
	ErrFull               = errors.New("backpack is full")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrNotFound           = errors.New("item not found")
	ErrAllocFailure       = errors.New("cannot allocate item node")
	ErrPreconditionNotMet = errors.New("items are not sorted by name")
	ErrNothingToSort      = errors.New("fewer than two items, nothing to sort")
)

// Store defines the operations both backpack implementations share.
type Store interface {
	// Insert adds an item at the end of the store.
	Insert(name, typ string, quantity int) error

	// Remove deletes the first item with the given name.
	Remove(name string) error

	// List returns a copy of the items in store order.
	List() []model.Item

	// Len returns the number of stored items.
	Len() int
}

var (
	_ Store = (*ArrayStore)(nil)
	_ Store = (*LinkedStore)(nil)
)

// newItem builds and validates the item to store. A non-positive quantity is
// reported as ErrInvalidQuantity.
func newItem(name, typ string, quantity int) (model.Item, error) {
	item := model.NewItem(name, typ, quantity)
	if err := item.Validate(); err != nil {
		if errors.Is(err, model.ErrNonPositiveQty) {
			return model.Item{}, ErrInvalidQuantity
		}
		return model.Item{}, err
	}
	return item, nil
}

// lookupName cuts name the way Insert does so stored items can be found with
// the name they were inserted under.
func lookupName(name string) string {
	return model.Truncate(name, model.MaxNameLength)
}
