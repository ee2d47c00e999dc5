package store

import (
	"fmt"

	"github.com/vyrodovalexey/backpack/internal/model"
)

type node struct {
	item model.Item
	next *node
}

// LinkedStore keeps items in a singly linked chain. Nodes never leave the
// store; searches hand out copies of the item.
type LinkedStore struct {
	head   *node
	length int
	limit  int
}

// LinkedOption configures a LinkedStore.
type LinkedOption func(*LinkedStore)

// WithNodeLimit caps the number of nodes the store may allocate.
// Inserting past the cap fails with ErrAllocFailure. Zero means no cap.
func WithNodeLimit(limit int) LinkedOption {
	return func(s *LinkedStore) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// NewLinkedStore creates an empty LinkedStore.
func NewLinkedStore(opts ...LinkedOption) *LinkedStore {
	s := &LinkedStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert walks to the tail and appends a new node there.
func (s *LinkedStore) Insert(name, typ string, quantity int) error {
	item, err := newItem(name, typ, quantity)
	if err != nil {
		return fmt.Errorf("insert %q: %w", name, err)
	}

	n, err := s.allocate(item)
	if err != nil {
		return fmt.Errorf("insert %q: %w", name, err)
	}

	if s.head == nil {
		s.head = n
	} else {
		cur := s.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	s.length++

	return nil
}

func (s *LinkedStore) allocate(item model.Item) (*node, error) {
	if s.limit > 0 && s.length >= s.limit {
		return nil, ErrAllocFailure
	}
	return &node{item: item}, nil
}

// Remove unlinks the first node whose item is named name.
func (s *LinkedStore) Remove(name string) error {
	key := lookupName(name)

	var prev *node
	for cur := s.head; cur != nil; prev, cur = cur, cur.next {
		if cur.item.Name != key {
			continue
		}

		if prev == nil {
			s.head = cur.next
		} else {
			prev.next = cur.next
		}
		cur.next = nil
		s.length--

		return nil
	}

	return fmt.Errorf("remove %q: %w", name, ErrNotFound)
}

// LinearSearch walks the chain from the head and returns a copy of the first
// item named name together with the number of nodes visited.
func (s *LinkedStore) LinearSearch(name string) (model.Item, int, error) {
	key := lookupName(name)

	comparisons := 0
	for cur := s.head; cur != nil; cur = cur.next {
		comparisons++
		if cur.item.Name == key {
			return cur.item, comparisons, nil
		}
	}
	return model.Item{}, comparisons, ErrNotFound
}

// Clear releases every node. It is safe to call on an empty store.
func (s *LinkedStore) Clear() {
	for s.head != nil {
		next := s.head.next
		s.head.next = nil
		s.head = next
	}
	s.length = 0
}

// List returns a copy of the items in chain order.
func (s *LinkedStore) List() []model.Item {
	out := make([]model.Item, 0, s.length)
	for cur := s.head; cur != nil; cur = cur.next {
		out = append(out, cur.item)
	}
	return out
}

// Len returns the number of nodes in the chain.
func (s *LinkedStore) Len() int { return s.length }

// Limit returns the node cap, zero when unbounded.
func (s *LinkedStore) Limit() int { return s.limit }
