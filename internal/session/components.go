package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/backpack/internal/model"
	"github.com/vyrodovalexey/backpack/internal/registry"
	"github.com/vyrodovalexey/backpack/internal/store"
	"github.com/vyrodovalexey/backpack/internal/terminal"
)

const (
	componentsRegister = iota + 1
	componentsList
	componentsSortName
	componentsSortType
	componentsSortPriority
	componentsSearch
	componentsBack = 0
)

var componentsOptions = []terminal.Option{
	{Key: componentsRegister, Label: "Register components"},
	{Key: componentsList, Label: "List components"},
	{Key: componentsSortName, Label: "Sort by name (bubble sort)"},
	{Key: componentsSortType, Label: "Sort by type (insertion sort)"},
	{Key: componentsSortPriority, Label: "Sort by priority (selection sort)"},
	{Key: componentsSearch, Label: "Find key component (binary search)"},
	{Key: componentsBack, Label: "Back"},
}

func (s *Session) componentsMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		choice, err := s.console.Choose("Tower escape", componentsOptions)
		if err != nil {
			return err
		}

		switch choice {
		case componentsRegister:
			err = s.registerComponents()
		case componentsList:
			s.listComponents()
		case componentsSortName:
			s.sortComponents(s.registry.SortByName)
		case componentsSortType:
			s.sortComponents(s.registry.SortByType)
		case componentsSortPriority:
			s.sortComponents(s.registry.SortByPriority)
		case componentsSearch:
			err = s.findKeyComponent()
		case componentsBack:
			return nil
		default:
			s.console.Println("\nInvalid option. Try again.")
		}

		if err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (s *Session) registerComponents() error {
	s.console.Println("\n-- Register components --")
	count, err := s.console.AskInt(fmt.Sprintf("How many components (max %d)? ", registry.MaxComponents))
	if err != nil {
		return err
	}

	if count <= 0 {
		s.report(collectionComponents, "register", store.ErrInvalidQuantity, "")
		return nil
	}
	if count > registry.MaxComponents {
		s.console.Printf("Only the first %d components will be kept.\n", registry.MaxComponents)
		count = registry.MaxComponents
	}

	components := make([]model.Component, 0, count)
	for i := 1; i <= count; i++ {
		s.console.Printf("\nComponent %d of %d\n", i, count)
		c, err := s.askComponent()
		if err != nil {
			return err
		}
		components = append(components, c)
	}

	n := s.registry.Register(components)
	s.lastSort = nil
	s.metrics.SetSize(collectionComponents, n)
	s.report(collectionComponents, "register", nil, fmt.Sprintf("%d components registered.", n))
	s.listComponents()

	return nil
}

func (s *Session) askComponent() (model.Component, error) {
	name, err := s.console.AskText("Name: ", model.MaxNameLength)
	if err != nil {
		return model.Component{}, err
	}

	typ, err := s.console.AskText("Type (e.g. control, support, propulsion): ", model.MaxTypeLength)
	if err != nil {
		return model.Component{}, err
	}

	raw, err := s.console.AskRaw(fmt.Sprintf("Priority (%d-%d): ", model.MinPriority, model.MaxPriority))
	if err != nil {
		return model.Component{}, err
	}

	return model.NewComponent(name, typ, model.ParsePriority(raw)), nil
}

func (s *Session) sortComponents(sort func() registry.SortReport) {
	if s.registry.Len() == 0 {
		s.console.Println("[Warning] No components registered.")
		return
	}

	rep := sort()
	s.lastSort = &rep

	s.metrics.ObserveOperation(collectionComponents, "sort_"+rep.Key, nil)
	s.metrics.ObserveSort(collectionComponents, rep.Algorithm, rep.Result)
	s.logger.Info("components sorted",
		zap.String("key", rep.Key),
		zap.String("algorithm", rep.Algorithm),
		zap.Int("comparisons", rep.Comparisons),
		zap.Duration("elapsed", rep.Elapsed),
	)

	s.console.Printf("[Ok] Sorted by %s with %s sort: %d comparisons in %.6f seconds.\n",
		rep.Key, rep.Algorithm, rep.Comparisons, rep.Seconds())
	s.listComponents()
}

func (s *Session) findKeyComponent() error {
	if s.registry.State() != registry.SortedByName {
		s.report(collectionComponents, "binary_search", registry.ErrPreconditionNotMet, "")
		return nil
	}

	s.console.Println("\n-- Find key component --")
	name, err := s.console.AskText("Name of the key component: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	idx, comparisons, err := s.registry.BinarySearchByName(name)
	s.metrics.ObserveComparisons(collectionComponents, "binary_search", comparisons)

	if err != nil {
		s.report(collectionComponents, "binary_search", err, "")
	} else {
		s.metrics.ObserveOperation(collectionComponents, "binary_search", nil)
		c, _ := s.registry.Get(idx)
		s.console.Printf("[Ok] Key component found at position %d: %s | %s | priority %d\n",
			idx+1, c.Name, c.Type, c.Priority)
	}

	s.console.Printf("Comparisons: %d\n", comparisons)
	if s.lastSort != nil {
		s.console.Printf("Last sort (%s, %s): %d comparisons in %.6f seconds.\n",
			s.lastSort.Key, s.lastSort.Algorithm, s.lastSort.Comparisons, s.lastSort.Seconds())
	}

	return nil
}

func (s *Session) listComponents() {
	terminal.RenderComponents(s.console.Out(), s.registry.List(), registry.MaxComponents)
}
