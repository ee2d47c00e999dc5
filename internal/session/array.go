package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/backpack/internal/model"
	"github.com/vyrodovalexey/backpack/internal/store"
	"github.com/vyrodovalexey/backpack/internal/terminal"
)

// Array backpack menu keys.
const (
	arrayInsert = iota + 1
	arrayRemove
	arrayList
	arrayLinearSearch
	arraySort
	arrayBinarySearch
	arrayBack = 0
)

var arrayOptions = []terminal.Option{
	{Key: arrayInsert, Label: "Insert item"},
	{Key: arrayRemove, Label: "Remove item"},
	{Key: arrayList, Label: "List items"},
	{Key: arrayLinearSearch, Label: "Search by name (linear)"},
	{Key: arraySort, Label: "Sort by name (bubble sort)"},
	{Key: arrayBinarySearch, Label: "Search by name (binary)"},
	{Key: arrayBack, Label: "Back"},
}

func (s *Session) arrayMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		choice, err := s.console.Choose("Array backpack", arrayOptions)
		if err != nil {
			return err
		}

		switch choice {
		case arrayInsert:
			err = s.arrayInsert()
		case arrayRemove:
			err = s.arrayRemove()
		case arrayList:
			s.listArray()
		case arrayLinearSearch:
			err = s.arrayLinearSearch()
		case arraySort:
			s.arraySort()
		case arrayBinarySearch:
			err = s.arrayBinarySearch()
		case arrayBack:
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

func (s *Session) arrayInsert() error {
	s.console.Println("\n-- Insert item --")
	name, typ, quantity, err := s.askItem()
	if err != nil {
		return err
	}

	err = s.array.Insert(name, typ, quantity)
	s.report(collectionArray, "insert", err, "Item inserted.")
	s.metrics.SetSize(collectionArray, s.array.Len())
	s.listArray()

	return nil
}

func (s *Session) arrayRemove() error {
	s.console.Println("\n-- Remove item --")
	name, err := s.console.AskText("Name of the item to remove: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	err = s.array.Remove(name)
	s.report(collectionArray, "remove", err, "Item removed.")
	s.metrics.SetSize(collectionArray, s.array.Len())
	s.listArray()

	return nil
}

func (s *Session) arrayLinearSearch() error {
	s.console.Println("\n-- Linear search --")
	name, err := s.console.AskText("Name of the item to find: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	idx, comparisons, err := s.array.LinearSearch(name)
	s.metrics.ObserveComparisons(collectionArray, "linear_search", comparisons)
	s.showArrayHit(name, idx, err)
	s.console.Printf("Comparisons: %d\n", comparisons)
	s.listArray()

	return nil
}

func (s *Session) arraySort() {
	res, err := s.array.SortByName()
	if err != nil {
		s.report(collectionArray, "sort", err, "")
		return
	}

	s.metrics.ObserveOperation(collectionArray, "sort", nil)
	s.metrics.ObserveSort(collectionArray, "bubble", res)
	s.logger.Info("items sorted",
		zap.String("collection", collectionArray),
		zap.Int("comparisons", res.Comparisons),
		zap.Duration("elapsed", res.Elapsed),
	)

	s.console.Printf("[Ok] Sorted by name: %d comparisons in %.6f seconds.\n", res.Comparisons, res.Seconds())
	s.listArray()
}

func (s *Session) arrayBinarySearch() error {
	if !s.array.Sorted() {
		s.report(collectionArray, "binary_search", store.ErrPreconditionNotMet, "")
		return nil
	}

	s.console.Println("\n-- Binary search --")
	name, err := s.console.AskText("Name of the item to find: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	idx, comparisons, err := s.array.BinarySearch(name)
	s.metrics.ObserveComparisons(collectionArray, "binary_search", comparisons)
	s.showArrayHit(name, idx, err)
	s.console.Printf("Comparisons: %d\n", comparisons)
	s.listArray()

	return nil
}

func (s *Session) showArrayHit(name string, idx int, err error) {
	if err != nil {
		s.logger.Debug("item not found", zap.String("collection", collectionArray), zap.String("name", name))
		s.console.Printf("Item '%s' not found.\n", name)
		return
	}

	it, _ := s.array.Get(idx)
	s.console.Printf("Found at position %d: Name: %s | Type: %s | Quantity: %d\n",
		idx+1, it.Name, it.Type, it.Quantity)
}

func (s *Session) listArray() {
	terminal.RenderItems(s.console.Out(), "Array backpack", s.array.List(), s.array.Capacity())
}

// askItem reads the three fields of a new item.
func (s *Session) askItem() (string, string, int, error) {
	name, err := s.console.AskText("Item name (e.g. AK-47, Bandage): ", model.MaxNameLength)
	if err != nil {
		return "", "", 0, err
	}

	typ, err := s.console.AskText("Item type (e.g. weapon, ammo, heal): ", model.MaxTypeLength)
	if err != nil {
		return "", "", 0, err
	}

	quantity, err := s.console.AskInt("Quantity: ")
	if err != nil {
		return "", "", 0, err
	}

	return name, typ, quantity, nil
}
