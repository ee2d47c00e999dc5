package store

import (
	"fmt"
	"strings"

	"github.com/vyrodovalexey/backpack/internal/model"
	"github.com/vyrodovalexey/backpack/internal/sorting"
)

// Capacity limits for ArrayStore.
const (
	DefaultCapacity = 10
	MaxCapacity     = 50
)

// ArrayStore keeps items in a fixed-size array. Items occupy [0, size) and the
// sorted flag tracks whether that range is in ascending name order.
type ArrayStore struct {
	items  []model.Item
	size   int
	sorted bool
}

// NewArrayStore creates an ArrayStore holding at most capacity items.
// Out of range capacities fall back to DefaultCapacity or MaxCapacity.
func NewArrayStore(capacity int) *ArrayStore {
	switch {
	case capacity <= 0:
		capacity = DefaultCapacity
	case capacity > MaxCapacity:
		capacity = MaxCapacity
	}

	return &ArrayStore{
		items: make([]model.Item, capacity),
	}
}

// Insert appends an item after the last occupied slot.
func (s *ArrayStore) Insert(name, typ string, quantity int) error {
	if s.size == len(s.items) {
		return fmt.Errorf("insert %q: %w", name, ErrFull)
	}

	item, err := newItem(name, typ, quantity)
	if err != nil {
		return fmt.Errorf("insert %q: %w", name, err)
	}

	s.items[s.size] = item
	s.size++
	s.sorted = false

	return nil
}

// Remove deletes the first item named name and shifts the rest left.
func (s *ArrayStore) Remove(name string) error {
	idx, _ := sorting.Linear(s.items[:s.size], byName(name))
	if idx == sorting.NotFound {
		return fmt.Errorf("remove %q: %w", name, ErrNotFound)
	}

	copy(s.items[idx:s.size-1], s.items[idx+1:s.size])
	s.size--
	s.items[s.size] = model.Item{}
	s.sorted = false

	return nil
}

// LinearSearch scans from the first slot and returns the index of the first
// item named name together with the number of items examined.
func (s *ArrayStore) LinearSearch(name string) (int, int, error) {
	idx, comparisons := sorting.Linear(s.items[:s.size], byName(name))
	if idx == sorting.NotFound {
		return sorting.NotFound, comparisons, ErrNotFound
	}
	return idx, comparisons, nil
}

// SortByName bubble sorts the items by name and marks the store sorted.
// With fewer than two items nothing is moved and ErrNothingToSort is returned,
// although the store still counts as sorted.
func (s *ArrayStore) SortByName() (sorting.Result, error) {
	if s.size < 2 {
		s.sorted = true
		return sorting.Result{}, ErrNothingToSort
	}

	res := sorting.Timed(func() int {
		return sorting.Bubble(s.items[:s.size], compareItemNames)
	})
	s.sorted = true

	return res, nil
}

// BinarySearch looks name up in a store sorted by SortByName.
func (s *ArrayStore) BinarySearch(name string) (int, int, error) {
	if !s.sorted {
		return sorting.NotFound, 0, ErrPreconditionNotMet
	}

	name = lookupName(name)
	idx, comparisons := sorting.Binary(s.items[:s.size], func(it model.Item) int {
		return strings.Compare(it.Name, name)
	})
	if idx == sorting.NotFound {
		return sorting.NotFound, comparisons, ErrNotFound
	}
	return idx, comparisons, nil
}

// Get returns the item at index i.
func (s *ArrayStore) Get(i int) (model.Item, bool) {
	if i < 0 || i >= s.size {
		return model.Item{}, false
	}
	return s.items[i], true
}

// List returns a copy of the stored items.
func (s *ArrayStore) List() []model.Item {
	out := make([]model.Item, s.size)
	copy(out, s.items[:s.size])
	return out
}

// Len returns the number of stored items.
func (s *ArrayStore) Len() int { return s.size }

// Capacity returns the maximum number of items.
func (s *ArrayStore) Capacity() int { return len(s.items) }

// Sorted reports whether the items are currently in name order.
func (s *ArrayStore) Sorted() bool { return s.sorted }

func byName(name string) func(model.Item) bool {
	name = lookupName(name)
	return func(it model.Item) bool { return it.Name == name }
}

func compareItemNames(a, b model.Item) int {
	return strings.Compare(a.Name, b.Name)
}
