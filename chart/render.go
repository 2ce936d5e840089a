package chart

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// cellText returns the text for a chart cell: "∅" for an empty set and
// nothing at all for an unpopulated cell.
func (c *Chart) cellText(start, length int) string {
	S := c.Cell(start, length)
	if S == nil {
		return ""
	}
	return S.String()
}

// Render writes the chart as a text table. The table has a column for every
// input position, labeled with the position and the input character, and a
// row for every substring length. Columns are as wide as their widest cell.
//
//     +---+--------+-----+-----+
//     | l | 0:a    | 1:b | 2:b |
//     +---+--------+-----+-----+
//     | 1 | {A}    | {B} | {B} |
//     | 2 | {S}    | ∅   |     |
//     | 3 | ∅      |     |     |
//     +---+--------+-----+-----+
//
func (c *Chart) Render(w io.Writer) {
	n := c.Size()
	table := tablewriter.NewWriter(w)
	header := make([]string, n+1)
	header[0] = "l"
	for i := 0; i < n; i++ {
		header[i+1] = fmt.Sprintf("%d:%s", i, c.input[i])
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for l := 1; l <= n; l++ {
		row := make([]string, n+1)
		row[0] = strconv.Itoa(l)
		for start := 0; start < n; start++ {
			row[start+1] = c.cellText(start, l)
		}
		table.Append(row)
	}
	table.Render()
}

// String returns the chart rendered as a text table.
func (c *Chart) String() string {
	var b strings.Builder
	c.Render(&b)
	return b.String()
}

// AsHTML exports the chart in HTML format.
func (c *Chart) AsHTML(w io.Writer) {
	n := c.Size()
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("CYK chart for input of length %d, %d cells populated<p>",
		n, c.CellCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for i := 0; i < n; i++ {
		io.WriteString(w, fmt.Sprintf("<td>%d: %s</td>", i, html.EscapeString(string(c.input[i]))))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for l := 1; l <= n; l++ {
		io.WriteString(w, fmt.Sprintf("<tr><td>length %d</td>\n", l))
		for start := 0; start < n; start++ {
			if td = c.cellText(start, l); td == "" {
				td = "&nbsp;"
			} else {
				td = html.EscapeString(td)
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}

// Dump is a debugging helper, tracing the chart row by row.
func (c *Chart) Dump() {
	n := c.Size()
	tracer().Debugf("--- chart for input of length %d ------------------", n)
	for l := n; l >= 1; l-- {
		cells := make([]string, 0, n-l+1)
		for start := 0; start+l <= n; start++ {
			if t := c.cellText(start, l); t == "" {
				cells = append(cells, "-")
			} else {
				cells = append(cells, t)
			}
		}
		tracer().Debugf("%3d | %s", l, strings.Join(cells, "  "))
	}
	input := make([]string, n)
	for i, a := range c.input {
		input[i] = string(a)
	}
	tracer().Debugf("    | %s", strings.Join(input, "  "))
	tracer().Debugf("-------------------------------------------------------")
}
