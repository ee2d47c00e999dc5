// Package registry holds the tower-escape components and the three
// instrumented sorts used to organise them before the escape.
package registry

import (
	"cmp"
	"errors"
	"strings"

	"github.com/vyrodovalexey/backpack/internal/model"
	"github.com/vyrodovalexey/backpack/internal/sorting"
)

// MaxComponents is the registry capacity.
const MaxComponents = 20

// Registry errors.
var (
	ErrPreconditionNotMet = errors.New("components are not sorted by name")
	ErrNotFound           = errors.New("component not found")
)

// State tracks whether binary search by name is allowed.
type State int

// Registry states.
const (
	NoData State = iota
	DataUnsorted
	SortedByName
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case NoData:
		return "no data"
	case DataUnsorted:
		return "unsorted"
	case SortedByName:
		return "sorted by name"
	default:
		return "unknown"
	}
}

// Sort keys and the algorithm used for each.
const (
	KeyName     = "name"
	KeyType     = "type"
	KeyPriority = "priority"

	AlgorithmBubble    = "bubble"
	AlgorithmInsertion = "insertion"
	AlgorithmSelection = "selection"
)

// SortReport describes one sort run over the registry.
type SortReport struct {
	Key       string
	Algorithm string
	sorting.Result
}

// Registry is a fixed-capacity list of components.
type Registry struct {
	components []model.Component
	state      State
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		components: make([]model.Component, 0, MaxComponents),
	}
}

// Register replaces the registry contents with at most MaxComponents
// components, clamping every priority. Components with a blank name or type
// are skipped. It returns how many were kept.
func (r *Registry) Register(components []model.Component) int {
	if len(components) > MaxComponents {
		components = components[:MaxComponents]
	}

	r.components = r.components[:0]
	for _, c := range components {
		c = model.NewComponent(c.Name, c.Type, c.Priority)
		if c.Validate() != nil {
			continue
		}
		r.components = append(r.components, c)
	}
	r.state = r.unsortedState()

	return len(r.components)
}

// SortByName bubble sorts by name and enables BinarySearchByName.
func (r *Registry) SortByName() SortReport {
	res := sorting.Timed(func() int {
		return sorting.Bubble(r.components, func(a, b model.Component) int {
			return strings.Compare(a.Name, b.Name)
		})
	})

	r.state = SortedByName
	if len(r.components) == 0 {
		r.state = NoData
	}

	return SortReport{Key: KeyName, Algorithm: AlgorithmBubble, Result: res}
}

// SortByType insertion sorts by type.
func (r *Registry) SortByType() SortReport {
	res := sorting.Timed(func() int {
		return sorting.Insertion(r.components, func(a, b model.Component) int {
			return strings.Compare(a.Type, b.Type)
		})
	})
	r.state = r.unsortedState()

	return SortReport{Key: KeyType, Algorithm: AlgorithmInsertion, Result: res}
}

// SortByPriority selection sorts by ascending priority.
func (r *Registry) SortByPriority() SortReport {
	res := sorting.Timed(func() int {
		return sorting.Selection(r.components, func(a, b model.Component) int {
			return cmp.Compare(a.Priority, b.Priority)
		})
	})
	r.state = r.unsortedState()

	return SortReport{Key: KeyPriority, Algorithm: AlgorithmSelection, Result: res}
}

// BinarySearchByName finds the key component. The registry must be in
// state SortedByName.
func (r *Registry) BinarySearchByName(name string) (int, int, error) {
	if r.state != SortedByName {
		return sorting.NotFound, 0, ErrPreconditionNotMet
	}

	name = model.Truncate(name, model.MaxNameLength)
	idx, comparisons := sorting.Binary(r.components, func(c model.Component) int {
		return strings.Compare(c.Name, name)
	})
	if idx == sorting.NotFound {
		return sorting.NotFound, comparisons, ErrNotFound
	}
	return idx, comparisons, nil
}

// Get returns the component at index i.
func (r *Registry) Get(i int) (model.Component, bool) {
	if i < 0 || i >= len(r.components) {
		return model.Component{}, false
	}
	return r.components[i], true
}

// List returns a copy of the components in their current order.
func (r *Registry) List() []model.Component {
	out := make([]model.Component, len(r.components))
	copy(out, r.components)
	return out
}

// Len returns the number of registered components.
func (r *Registry) Len() int { return len(r.components) }

// State returns the search precondition state.
func (r *Registry) State() State { return r.state }

func (r *Registry) unsortedState() State {
	if len(r.components) == 0 {
		return NoData
	}
	return DataUnsorted
}
