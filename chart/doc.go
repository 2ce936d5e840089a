/*
Package chart implements the triangular table of a CYK recognizer.

For an input of length n, the chart holds a cell for every substring of the
input. A cell is addressed by the position of the substring's first
character and the length of the substring:

     C := chart.New(input)          // input is a slice of terminals
     C.Set(0, 1, S)                 // set the cell for input[0:1]
     S = C.Cell(0, 1)               // returns S
     S = C.Cell(1, n)               // returns nil, i.e. out of range

Cells are unpopulated (nil) until set. A cell set to an empty symbol set is
populated: no non-terminal derives the substring. After a complete run of a
recognizer all n·(n+1)/2 cells are populated.

Charts may be rendered as text tables, exported to HTML, or dumped to the
trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.chart'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.chart")
}
