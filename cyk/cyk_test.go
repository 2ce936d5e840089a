package cyk

import (
	"testing"

	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

func load(t *testing.T, rules string) *grammar.Grammar {
	g, err := grammar.LoadString(rules)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

var abRules = `
S -> AB
A -> a
B -> b
`

func TestAcceptAB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	r := NewRecognizer(load(t, abRules))
	for input, expected := range map[string]bool{
		"ab": true,
		"ba": false,
		"a":  false,
		"":   false,
		"xy": false,
	} {
		accept, _, err := r.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accept != expected {
			t.Errorf("expected accepted(%q) = %v, is %v", input, expected, accept)
		}
	}
}

func TestAcceptEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g := load(t, "S -> AB | ε\nA -> a\nB -> b\n")
	accept, C, err := NewRecognizer(g).Recognize("")
	if err != nil {
		t.Fatal(err)
	}
	if !accept {
		t.Errorf("expected empty input to be accepted")
	}
	if C != nil {
		t.Errorf("expected no chart to be built for empty input")
	}
	if Accepts(nil, g, "") != g.DerivesEmpty(g.Start()) {
		t.Errorf("expected verdict for empty input to equal DerivesEmpty(start)")
	}
}

func TestUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g := load(t, abRules+"X -> x\n")
	accept, C, err := NewRecognizer(g).Recognize("x")
	if err != nil {
		t.Fatal(err)
	}
	if accept {
		t.Errorf("expected input x not to be accepted")
	}
	if !C.Cell(0, 1).Contains("X") {
		t.Errorf("expected X to derive x, cell is %s", C.Cell(0, 1))
	}
}

var balanced = `
P -> LR | LQ | PP
Q -> PR
L -> (
R -> )
`

var balancedInputs = map[string]bool{
	"()":       true,
	"(())":     true,
	"()()":     true,
	"(()())()": true,
	"(":        false,
	")(":       false,
	"(()":      false,
	"())(()":   false,
}

func TestBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	r := NewRecognizer(load(t, balanced))
	for input, expected := range balancedInputs {
		accept, C, err := r.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accept != expected {
			t.Errorf("expected accepted(%q) = %v, is %v", input, expected, accept)
			C.Dump()
		}
	}
}

func TestTableShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	r := NewRecognizer(load(t, balanced))
	for input := range balancedInputs {
		C, err := r.Build(input)
		if err != nil {
			t.Fatal(err)
		}
		n := C.Size()
		if C.CellCount() != n*(n+1)/2 {
			t.Errorf("expected %d populated cells for %q, have %d", n*(n+1)/2, input, C.CellCount())
		}
		C.Each(func(start, length int, S *grammar.SymbolSet) {
			if length > n-start {
				t.Errorf("cell (%d,%d) exceeds input %q", start, length, input)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	r := NewRecognizer(load(t, balanced))
	input := "(()())()"
	C1, _ := r.Build(input)
	C2, _ := r.Build(input)
	C1.Each(func(start, length int, S *grammar.SymbolSet) {
		if !S.Equals(C2.Cell(start, length)) {
			t.Errorf("cell (%d,%d) differs between runs: %s vs %s",
				start, length, S, C2.Cell(start, length))
		}
	})
}

func TestMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g1 := load(t, balanced)
	g2 := load(t, balanced+"P -> LP\nL -> [\n")
	input := "(()())()"
	C1, _ := NewRecognizer(g1).Build(input)
	C2, _ := NewRecognizer(g2).Build(input)
	C1.Each(func(start, length int, S *grammar.SymbolSet) {
		S.Each(func(A grammar.Symbol) {
			if !C2.Cell(start, length).Contains(A) {
				t.Errorf("expected %s in cell (%d,%d) of extended grammar", A, start, length)
			}
		})
	})
	if !Accepts(C2, g2, input) {
		t.Errorf("expected extended grammar to accept %q", input)
	}
}

func TestUnitCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g := load(t, "S -> AB\nA -> B | a\nB -> A | b\n")
	r := NewRecognizer(g)
	for _, input := range []string{"ab", "aa", "ba", "bb"} {
		accept, _, err := r.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if !accept {
			t.Errorf("expected %q to be accepted", input)
		}
	}
}

func TestExpandSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	// S derives the input only by a unit production on top of a binary rule
	for rules, input := range map[string]string{
		"S -> T\nT -> AB\nA -> a\nB -> b\n": "ab",
		"S -> A\nA -> BC\nB -> b\nC -> c\n": "bc",
	} {
		g := load(t, rules)
		accept, C, err := NewRecognizer(g).Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accept {
			t.Errorf("expected %q not to be accepted without span expansion", input)
			C.Dump()
		}
		accept, C, err = NewRecognizer(g, ExpandSpans(true)).Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if !accept {
			t.Errorf("expected %q to be accepted with span expansion", input)
			C.Dump()
		}
	}
}

func TestStartIsFirstLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	// the rule for S is skipped; A -> a must not make "a" a sentence
	g := load(t, "S -> abc\nA -> a\n")
	accept, _, err := NewRecognizer(g).Recognize("a")
	if err != nil {
		t.Fatal(err)
	}
	if accept {
		t.Errorf("expected a not to be accepted with start symbol %s", g.Start())
	}
}

func TestTerminalSpelledAsNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	// input characters A and B seed their cells as non-terminals A and B
	g := load(t, "S -> XY\nX -> A\nY -> B\nA -> a\nB -> b\n")
	r := NewRecognizer(g)
	for input, expected := range map[string]bool{
		"ab": true,
		"AB": true,
		"Ab": true,
		"XY": false,
	} {
		accept, _, err := r.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accept != expected {
			t.Errorf("expected accepted(%q) = %v, is %v", input, expected, accept)
		}
	}
}

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g := load(t, "S -> AB | ε\nA -> a | ε\nB -> b\n")
	r := NewRecognizer(g)
	for input, expected := range map[string]bool{
		"ab": true,
		"b":  true,
		"a":  false,
		"":   true,
		"ba": false,
	} {
		accept, _, err := r.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accept != expected {
			t.Errorf("expected accepted(%q) = %v, is %v", input, expected, accept)
		}
	}
}

func TestMaxInputLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	r := NewRecognizer(load(t, balanced), MaxInputLength(4))
	if _, _, err := r.Recognize("(())"); err != nil {
		t.Errorf("expected input of length 4 to be processed, got %v", err)
	}
	_, C, err := r.Recognize("()()()")
	if !errors.Is(err, ErrInputTooLong) {
		t.Errorf("expected ErrInputTooLong, got %v", err)
	}
	if C != nil {
		t.Errorf("expected no chart for input exceeding the limit")
	}
}

func TestRuneInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	g := load(t, "S -> AB\nA -> ä\nB -> ß\n")
	accept, C, err := NewRecognizer(g).Recognize("äß")
	if err != nil {
		t.Fatal(err)
	}
	if !accept || C.Size() != 2 {
		t.Errorf("expected input of 2 characters to be accepted")
	}
}
