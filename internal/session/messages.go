package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/backpack/internal/registry"
	"github.com/vyrodovalexey/backpack/internal/store"
)

// describe turns an operation error into the message shown to the player.
func describe(err error) string {
	switch {
	case errors.Is(err, store.ErrFull):
		return "Backpack is full. Remove an item first."
	case errors.Is(err, store.ErrInvalidQuantity):
		return "Quantity must be positive."
	case errors.Is(err, store.ErrNotFound):
		return "Item not found."
	case errors.Is(err, store.ErrAllocFailure):
		return "Could not allocate memory for the item."
	case errors.Is(err, store.ErrPreconditionNotMet):
		return "Sort the backpack by name before using binary search."
	case errors.Is(err, store.ErrNothingToSort):
		return "Fewer than two items, nothing to sort."
	case errors.Is(err, registry.ErrPreconditionNotMet):
		return "Sort the components by name before searching for the key component."
	case errors.Is(err, registry.ErrNotFound):
		return "Component not found."
	default:
		return "Unexpected error."
	}
}

// report prints the outcome of an operation and records it.
func (s *Session) report(collection, operation string, err error, success string) {
	s.metrics.ObserveOperation(collection, operation, err)

	if err == nil {
		s.logger.Info("operation succeeded",
			zap.String("collection", collection),
			zap.String("operation", operation),
		)
		s.console.Printf("[Ok] %s\n", success)
		return
	}

	s.logger.Warn("operation failed",
		zap.String("collection", collection),
		zap.String("operation", operation),
		zap.Error(err),
	)
	s.console.Printf("[Warning] %s\n", describe(err))
}
