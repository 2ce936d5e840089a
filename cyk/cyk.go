package cyk

import (
	"unicode/utf8"

	"github.com/npillmayer/gocyk/chart"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// ErrInputTooLong is returned for inputs exceeding the maximum input length
// of a recognizer.
var ErrInputTooLong = errors.New("input too long")

// Recognizer is a CYK recognizer for a grammar.
type Recognizer struct {
	g         *grammar.Grammar
	expand    bool // close cells of all lengths under unit steps
	unitSteps bool // does g have unit steps at all?
	maxLen    int  // 0 = unlimited
}

// Option configures a recognizer.
type Option func(*Recognizer)

// ExpandSpans sets whether cells for substrings of length > 1 are closed
// under unit productions (and ε-induced unit steps). With this option
// off, only the cells for single characters are closed. Default is false, or
// configuration key "cyk.expand-spans", if set.
// For grammars in strict Chomsky normal form this option makes no difference.
func ExpandSpans(b bool) Option {
	return func(r *Recognizer) {
		r.expand = b
	}
}

// MaxInputLength sets a limit for the number of characters of an input.
// Longer inputs are rejected with ErrInputTooLong. 0 means no limit.
// Default is configuration key "cyk.max-input".
func MaxInputLength(n int) Option {
	return func(r *Recognizer) {
		if n >= 0 {
			r.maxLen = n
		}
	}
}

// NewRecognizer creates a recognizer for grammar g.
func NewRecognizer(g *grammar.Grammar, opts ...Option) *Recognizer {
	r := &Recognizer{
		g:      g,
		expand: gconf.GetBool("cyk.expand-spans"),
	}
	if n := gconf.GetInt("cyk.max-input"); n > 0 {
		r.maxLen = n
	}
	for _, opt := range opts {
		opt(r)
	}
	r.unitSteps = g.HasUnitSteps()
	return r
}

// Grammar returns the grammar of r.
func (r *Recognizer) Grammar() *grammar.Grammar {
	return r.g
}

// Symbols splits an input string into terminal symbols, one per character.
func Symbols(input string) []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, utf8.RuneCountInString(input))
	for _, c := range input {
		syms = append(syms, grammar.Symbol(string(c)))
	}
	return syms
}

// Build creates the chart for an input. For the empty input, the chart has
// no cells.
//
// Characters not occurring in the grammar are not an error: their cells are
// empty and the input will not be accepted.
func (r *Recognizer) Build(input string) (*chart.Chart, error) {
	syms := Symbols(input)
	n := len(syms)
	if r.maxLen > 0 && n > r.maxLen {
		return nil, errors.Wrapf(ErrInputTooLong, "input has %d characters, limit is %d", n, r.maxLen)
	}
	C := chart.New(syms)
	for i, a := range syms { // substrings of length 1
		C.Set(i, 1, r.g.Closure(a))
	}
	for l := 2; l <= n; l++ {
		for s := 0; s <= n-l; s++ {
			C.Set(s, l, r.combine(C, s, l))
		}
	}
	if n > 0 {
		tracer().Debugf("chart for %q: top cell = %s", input, C.Cell(0, n))
	}
	return C, nil
}

// combine computes the cell for the substring starting at s with length l,
// from all pairs of cells for its prefixes and suffixes.
func (r *Recognizer) combine(C *chart.Chart, s, l int) *grammar.SymbolSet {
	S := grammar.NewSymbolSet()
	for p := 1; p < l; p++ {
		left, right := C.Cell(s, p), C.Cell(s+p, l-p)
		if left.Empty() || right.Empty() {
			continue
		}
		left.Each(func(B grammar.Symbol) {
			right.Each(func(D grammar.Symbol) {
				S.Union(r.g.ProducersOf(B, D))
			})
		})
	}
	if r.expand && r.unitSteps && !S.Empty() {
		S = r.g.CloseSet(S)
	}
	return S
}

// Accepts checks if a chart proves input to be a member of the language of g.
// For the empty input, the chart is not consulted and may be nil: the input is
// accepted if the start symbol of g is a producer of ε.
func Accepts(C *chart.Chart, g *grammar.Grammar, input string) bool {
	if input == "" {
		return g.DerivesEmpty(g.Start())
	}
	if C == nil {
		return false
	}
	n := utf8.RuneCountInString(input)
	return C.Cell(0, n).Contains(g.Start())
}

// Recognize checks if an input is a member of the language of r's grammar.
// It returns the verdict and the chart built for the input. For the empty
// input no chart is built and the returned chart is nil.
func (r *Recognizer) Recognize(input string) (bool, *chart.Chart, error) {
	if input == "" {
		accept := Accepts(nil, r.g, input)
		tracer().Infof("empty input accepted = %v", accept)
		return accept, nil, nil
	}
	C, err := r.Build(input)
	if err != nil {
		return false, nil, err
	}
	accept := Accepts(C, r.g, input)
	tracer().Infof("input %q accepted = %v", input, accept)
	return accept, C, nil
}
