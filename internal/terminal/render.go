package terminal

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/vyrodovalexey/backpack/internal/model"
)

// Option is one numbered menu entry.
type Option struct {
	Key   int
	Label string
}

// RenderMenu writes a titled list of options.
func RenderMenu(w io.Writer, title string, options []Option) {
	fmt.Fprintf(w, "\n==== %s ====\n", title)
	for _, o := range options {
		fmt.Fprintf(w, "%d) %s\n", o.Key, o.Label)
	}
}

// RenderItems lists items with their 1-based position. A capacity of zero
// means the collection has no fixed size.
func RenderItems(w io.Writer, title string, items []model.Item, capacity int) {
	if capacity > 0 {
		fmt.Fprintf(w, "\n==== %s (%d/%d) ====\n", title, len(items), capacity)
	} else {
		fmt.Fprintf(w, "\n==== %s (%d items) ====\n", title, len(items))
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "Backpack is empty.")
		fmt.Fprintln(w, rule)
		return
	}

	fmt.Fprintf(w, "%3s %s | %s | %s\n", "#", pad("Name", model.MaxNameLength), pad("Type", model.MaxTypeLength), "Qty")
	for i, it := range items {
		fmt.Fprintf(w, "%2d) %s | %s | %d\n", i+1, pad(it.Name, model.MaxNameLength), pad(it.Type, model.MaxTypeLength), it.Quantity)
	}
	fmt.Fprintln(w, rule)
}

// RenderComponents lists the tower components in their current order.
func RenderComponents(w io.Writer, components []model.Component, capacity int) {
	fmt.Fprintf(w, "\n==== Tower components (%d/%d) ====\n", len(components), capacity)

	if len(components) == 0 {
		fmt.Fprintln(w, "No components registered.")
		fmt.Fprintln(w, rule)
		return
	}

	fmt.Fprintf(w, "%3s %s | %s | %s\n", "#", pad("Name", model.MaxNameLength), pad("Type", model.MaxTypeLength), "Priority")
	for i, c := range components {
		fmt.Fprintf(w, "%2d) %s | %s | %d\n", i+1, pad(c.Name, model.MaxNameLength), pad(c.Type, model.MaxTypeLength), c.Priority)
	}
	fmt.Fprintln(w, rule)
}

const rule = "================================="

// pad fills s with spaces up to width display columns.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
