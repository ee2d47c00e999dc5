package model

import (
	"strconv"
	"strings"
)

// Priority bounds for tower components.
const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = MinPriority
)

// Component is a part required to escape the tower.
type Component struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
}

// NewComponent builds a Component with truncated labels and a clamped priority.
func NewComponent(name, typ string, priority int) Component {
	return Component{
		Name:     Truncate(name, MaxNameLength),
		Type:     Truncate(typ, MaxTypeLength),
		Priority: ClampPriority(priority),
	}
}

// Validate checks if the Component has valid field values.
func (c *Component) Validate() error {
	return validateLabels(c.Name, c.Type)
}

// ClampPriority forces p into [MinPriority, MaxPriority].
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

// ParsePriority reads a priority typed by the player. Anything that is not an
// integer becomes DefaultPriority.
func ParsePriority(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultPriority
	}
	return ClampPriority(p)
}
