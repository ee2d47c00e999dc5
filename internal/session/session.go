// Package session drives one interactive backpack session: it owns the item
// stores and the component registry and turns menu choices into operations.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/backpack/internal/metrics"
	"github.com/vyrodovalexey/backpack/internal/registry"
	"github.com/vyrodovalexey/backpack/internal/store"
	"github.com/vyrodovalexey/backpack/internal/terminal"
)

// Collection labels used in logs and metrics.
const (
	collectionArray      = "array"
	collectionLinked     = "linked"
	collectionComponents = "components"
)

// Main menu keys.
const (
	mainArray = iota + 1
	mainLinked
	mainComponents
	mainStatistics
	mainExit = 0
)

// Options configures the stores owned by a Session.
type Options struct {
	ArrayCapacity   int
	LinkedNodeLimit int
}

// Session holds all state of one run. Nothing is shared between sessions.
type Session struct {
	id       string
	console  *terminal.Console
	logger   *zap.Logger
	metrics  *metrics.Recorder
	array    *store.ArrayStore
	linked   *store.LinkedStore
	registry *registry.Registry

	// lastSort is the most recent registry sort, reported next to searches.
	lastSort *registry.SortReport
}

// New creates a Session. rec may be nil to disable metrics.
func New(console *terminal.Console, logger *zap.Logger, rec *metrics.Recorder, opts Options) *Session {
	id := uuid.New().String()

	s := &Session{
		id:       id,
		console:  console,
		logger:   logger.With(zap.String("session_id", id)),
		metrics:  rec,
		array:    store.NewArrayStore(opts.ArrayCapacity),
		linked:   store.NewLinkedStore(store.WithNodeLimit(opts.LinkedNodeLimit)),
		registry: registry.New(),
	}

	s.metrics.SetSize(collectionArray, 0)
	s.metrics.SetSize(collectionLinked, 0)
	s.metrics.SetSize(collectionComponents, 0)

	return s
}

// ID returns the session identifier attached to every log line.
func (s *Session) ID() string { return s.id }

// Run shows the main menu until the player exits, the input ends or ctx is
// cancelled. Running out of input counts as a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started",
		zap.Int("array_capacity", s.array.Capacity()),
		zap.Int("linked_node_limit", s.linked.Limit()),
	)

	s.console.Println("Welcome! Organise your starting loot quickly.")
	terminal.RenderItems(s.console.Out(), "Array backpack", s.array.List(), s.array.Capacity())

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		choice, err := s.console.Choose("Survival backpack", s.mainOptions())
		if err != nil {
			return s.endOfInput(err)
		}

		switch choice {
		case mainArray:
			err = s.arrayMenu(ctx)
		case mainLinked:
			err = s.linkedMenu(ctx)
		case mainComponents:
			err = s.componentsMenu(ctx)
		case mainStatistics:
			if s.metrics == nil {
				s.console.Println("\nInvalid option. Try again.")
				continue
			}
			err = s.showStatistics()
		case mainExit:
			s.console.Println("Leaving... Good looting and good luck!")
			return nil
		default:
			s.console.Println("\nInvalid option. Try again.")
		}

		if err != nil {
			return s.endOfInput(err)
		}
	}
}

// Close releases the linked store nodes. It is safe to call more than once.
func (s *Session) Close() {
	released := s.linked.Len()
	s.linked.Clear()
	s.metrics.SetSize(collectionLinked, 0)

	s.logger.Info("session closed", zap.Int("released_nodes", released))
}

func (s *Session) mainOptions() []terminal.Option {
	opts := []terminal.Option{
		{Key: mainArray, Label: "Array backpack"},
		{Key: mainLinked, Label: "Linked backpack"},
		{Key: mainComponents, Label: "Tower escape components"},
	}
	if s.metrics != nil {
		opts = append(opts, terminal.Option{Key: mainStatistics, Label: "Statistics"})
	}
	return append(opts, terminal.Option{Key: mainExit, Label: "Exit"})
}

// showStatistics prints the session metrics in the Prometheus text format.
func (s *Session) showStatistics() error {
	s.console.Println("\n==== Session statistics ====")
	if err := s.metrics.WriteText(s.console.Out()); err != nil {
		s.logger.Error("failed to render statistics", zap.Error(err))
		return fmt.Errorf("rendering statistics: %w", err)
	}
	return nil
}

// endOfInput turns io.EOF into a normal exit.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Info("input closed")
		s.console.Println("\nInput closed. Leaving...")
		return nil
	}
	return err
}
