package chart

import (
	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
)

// Chart is the triangular table of a CYK recognizer. Row l-1 holds the
// cells for substrings of length l, so row 0 has n cells and row n-1 has
// a single cell, spanning the whole input.
type Chart struct {
	input     []grammar.Symbol
	rows      [][]*grammar.SymbolSet
	populated int
}

// New creates an empty chart for an input.
func New(input []grammar.Symbol) *Chart {
	n := len(input)
	c := &Chart{
		input: make([]grammar.Symbol, n),
		rows:  make([][]*grammar.SymbolSet, n),
	}
	copy(c.input, input)
	for l := 1; l <= n; l++ {
		c.rows[l-1] = make([]*grammar.SymbolSet, n-l+1)
	}
	return c
}

// Size returns the length of the input.
func (c *Chart) Size() int {
	return len(c.input)
}

// Input returns the input symbol at position i.
func (c *Chart) Input(i int) grammar.Symbol {
	if i < 0 || i >= len(c.input) {
		return ""
	}
	return c.input[i]
}

// inRange is a predicate: does (start, length) address a cell of c?
func (c *Chart) inRange(start, length int) bool {
	return start >= 0 && length >= 1 && start+length <= len(c.input)
}

// Cell returns the symbols deriving the substring of the input starting at
// position start with the given length. If the cell is unpopulated or
// (start, length) is out of range, nil is returned.
func (c *Chart) Cell(start, length int) *grammar.SymbolSet {
	if !c.inRange(start, length) {
		return nil
	}
	return c.rows[length-1][start]
}

// Span returns the span of the input covered by a cell.
func (c *Chart) Span(start, length int) gocyk.Span {
	return gocyk.SpanOf(start, length)
}

// Set populates a cell. Setting a cell twice replaces the former set.
// A nil set is stored as an empty set.
func (c *Chart) Set(start, length int, S *grammar.SymbolSet) *Chart {
	if !c.inRange(start, length) {
		tracer().Errorf("chart cell (%d,%d) out of range for input of length %d",
			start, length, len(c.input))
		return c
	}
	if S == nil {
		S = grammar.NewSymbolSet()
	}
	if c.rows[length-1][start] == nil {
		c.populated++
	}
	c.rows[length-1][start] = S
	return c
}

// Populated is a predicate: has cell (start, length) been set?
func (c *Chart) Populated(start, length int) bool {
	return c.Cell(start, length) != nil
}

// CellCount returns the number of populated cells.
func (c *Chart) CellCount() int {
	return c.populated
}

// Each calls f for every populated cell, row by row, i.e. ordered by length
// and then by start position.
func (c *Chart) Each(f func(start, length int, S *grammar.SymbolSet)) {
	for l, row := range c.rows {
		for start, S := range row {
			if S != nil {
				f(start, l+1, S)
			}
		}
	}
}
