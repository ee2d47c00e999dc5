// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Validation errors for Item and Component.
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 29 characters")
	ErrEmptyType      = errors.New("type cannot be empty")
	ErrTypeTooLong    = errors.New("type cannot exceed 19 characters")
	ErrNonPositiveQty = errors.New("quantity must be positive")
)

// Validation constants.
const (
	MaxNameLength = 29
	MaxTypeLength = 19
)

// Item is a single entry of the survival backpack.
type Item struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// NewItem builds an Item with name and type cut to their maximum lengths.
func NewItem(name, typ string, quantity int) Item {
	return Item{
		Name:     Truncate(name, MaxNameLength),
		Type:     Truncate(typ, MaxTypeLength),
		Quantity: quantity,
	}
}

// Validate checks if the Item has valid field values.
func (i *Item) Validate() error {
	if i.Quantity <= 0 {
		return ErrNonPositiveQty
	}

	return validateLabels(i.Name, i.Type)
}

// Truncate cuts s to at most limit characters.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func validateLabels(name, typ string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}

	if strings.TrimSpace(typ) == "" {
		return ErrEmptyType
	}

	if utf8.RuneCountInString(typ) > MaxTypeLength {
		return ErrTypeTooLong
	}

	return nil
}
