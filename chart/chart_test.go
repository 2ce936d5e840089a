package chart

import (
	"strings"
	"testing"

	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func input(s string) []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, grammar.Symbol(string(r)))
	}
	return syms
}

func TestChartCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.chart")
	defer teardown()
	//
	C := New(input("abb"))
	if C.Size() != 3 || C.CellCount() != 0 {
		t.Fatalf("expected empty chart of size 3, have size %d with %d cells", C.Size(), C.CellCount())
	}
	C.Set(0, 1, grammar.NewSymbolSet("A"))
	C.Set(1, 2, nil)
	if !C.Populated(0, 1) || !C.Cell(0, 1).Contains("A") {
		t.Errorf("expected cell (0,1) to contain A")
	}
	if !C.Populated(1, 2) || !C.Cell(1, 2).Empty() {
		t.Errorf("expected cell (1,2) to be populated with ∅")
	}
	if C.Populated(0, 3) || C.Cell(0, 3) != nil {
		t.Errorf("expected cell (0,3) to be unpopulated")
	}
	C.Set(0, 1, grammar.NewSymbolSet("B"))
	if C.CellCount() != 2 {
		t.Errorf("expected setting a cell twice to count once, have %d cells", C.CellCount())
	}
	if C.Input(2) != "b" || C.Input(3) != "" {
		t.Errorf("expected input[2] = b and input[3] to be out of range")
	}
	if span := C.Span(1, 2); span.From() != 1 || span.To() != 3 {
		t.Errorf("expected cell (1,2) to span (1…3), spans %s", span)
	}
}

func TestChartRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.chart")
	defer teardown()
	//
	C := New(input("ab"))
	for _, pos := range [][2]int{{2, 1}, {1, 2}, {-1, 1}, {0, 0}, {0, 3}} {
		C.Set(pos[0], pos[1], grammar.NewSymbolSet("X"))
		if C.Cell(pos[0], pos[1]) != nil {
			t.Errorf("expected cell (%d,%d) to be out of range", pos[0], pos[1])
		}
	}
	if C.CellCount() != 0 {
		t.Errorf("expected no cells to be populated, have %d", C.CellCount())
	}
}

func TestChartEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.chart")
	defer teardown()
	//
	n := 4
	C := New(input("abcd"))
	for l := 1; l <= n; l++ {
		for start := 0; start+l <= n; start++ {
			C.Set(start, l, grammar.NewSymbolSet())
		}
	}
	if C.CellCount() != n*(n+1)/2 {
		t.Errorf("expected %d cells, have %d", n*(n+1)/2, C.CellCount())
	}
	count, lastLen := 0, 0
	C.Each(func(start, length int, S *grammar.SymbolSet) {
		if length < lastLen {
			t.Errorf("expected cells to be visited ordered by length")
		}
		if start+length > n {
			t.Errorf("cell (%d,%d) exceeds input", start, length)
		}
		lastLen = length
		count++
	})
	if count != C.CellCount() {
		t.Errorf("expected Each to visit %d cells, visited %d", C.CellCount(), count)
	}
}

func TestChartRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.chart")
	defer teardown()
	//
	C := New(input("ab"))
	C.Set(0, 1, grammar.NewSymbolSet("A"))
	C.Set(1, 1, grammar.NewSymbolSet("B"))
	C.Set(0, 2, grammar.NewSymbolSet())
	C.Dump()
	s := C.String()
	t.Logf("\n%s", s)
	for _, part := range []string{"0:a", "1:b", "{A}", "{B}", "∅"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected rendered chart to contain %q", part)
		}
	}
	var b strings.Builder
	C.AsHTML(&b)
	h := b.String()
	if !strings.Contains(h, "<td>{A}</td>") || !strings.Contains(h, "&nbsp;") {
		t.Errorf("expected HTML chart to contain cell {A} and an unpopulated cell")
	}
	if !strings.Contains(h, "3 cells populated") {
		t.Errorf("expected HTML chart to report 3 populated cells")
	}
}
