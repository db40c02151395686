// Package sink turns the abstract write operations of a rendered program
// into text, either in memory or as files under a source root.
package sink

import "strings"

// Indenter tracks the nesting level and maps it to indentation text.
type Indenter struct {
	unit  string
	level int
}

// NewIndenter returns an indenter writing unit once per level.
func NewIndenter(unit string) Indenter {
	return Indenter{unit: unit}
}

// Increase raises the nesting level by n.
func (i *Indenter) Increase(n int) { i.level += n }

// Decrease lowers the nesting level by n, never below zero.
func (i *Indenter) Decrease(n int) {
	i.level -= n
	if i.level < 0 {
		i.level = 0
	}
}

// Level returns the current nesting level.
func (i *Indenter) Level() int { return i.level }

// Indent returns the indentation text for the current level plus extra levels.
func (i *Indenter) Indent(extra int) string {
	n := i.level + extra
	if n <= 0 || i.unit == "" {
		return ""
	}
	return strings.Repeat(i.unit, n)
}

func (i *Indenter) reset() { i.level = 0 }
