package session

import (
	"context"

	"github.com/vyrodovalexey/backpack/internal/model"
	"github.com/vyrodovalexey/backpack/internal/terminal"
)

const (
	linkedInsert = iota + 1
	linkedRemove
	linkedList
	linkedSearch
	linkedBack = 0
)

var linkedOptions = []terminal.Option{
	{Key: linkedInsert, Label: "Insert item"},
	{Key: linkedRemove, Label: "Remove item"},
	{Key: linkedList, Label: "List items"},
	{Key: linkedSearch, Label: "Search by name (linear)"},
	{Key: linkedBack, Label: "Back"},
}

func (s *Session) linkedMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		choice, err := s.console.Choose("Linked backpack", linkedOptions)
		if err != nil {
			return err
		}

		switch choice {
		case linkedInsert:
			err = s.linkedInsert()
		case linkedRemove:
			err = s.linkedRemove()
		case linkedList:
			s.listLinked()
		case linkedSearch:
			err = s.linkedSearch()
		case linkedBack:
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

func (s *Session) linkedInsert() error {
	s.console.Println("\n-- Insert item --")
	name, typ, quantity, err := s.askItem()
	if err != nil {
		return err
	}

	err = s.linked.Insert(name, typ, quantity)
	s.report(collectionLinked, "insert", err, "Item inserted.")
	s.metrics.SetSize(collectionLinked, s.linked.Len())
	s.listLinked()

	return nil
}

func (s *Session) linkedRemove() error {
	s.console.Println("\n-- Remove item --")
	name, err := s.console.AskText("Name of the item to remove: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	err = s.linked.Remove(name)
	s.report(collectionLinked, "remove", err, "Item removed.")
	s.metrics.SetSize(collectionLinked, s.linked.Len())
	s.listLinked()

	return nil
}

func (s *Session) linkedSearch() error {
	s.console.Println("\n-- Linear search --")
	name, err := s.console.AskText("Name of the item to find: ", model.MaxNameLength)
	if err != nil {
		return err
	}

	it, comparisons, err := s.linked.LinearSearch(name)
	s.metrics.ObserveComparisons(collectionLinked, "linear_search", comparisons)
	if err != nil {
		s.console.Printf("Item '%s' not found.\n", name)
	} else {
		s.console.Printf("Found: Name: %s | Type: %s | Quantity: %d\n", it.Name, it.Type, it.Quantity)
	}
	s.console.Printf("Comparisons: %d\n", comparisons)
	s.listLinked()

	return nil
}

func (s *Session) listLinked() {
	terminal.RenderItems(s.console.Out(), "Linked backpack", s.linked.List(), 0)
}
