package grammar

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// LoaderOption configures the loading of a grammar from rule text.
type LoaderOption func(*loader)

// StartSymbol pre-assigns the start symbol of the grammar.
// Default is the left hand side of the first rule, or configuration key
// "cyk.start", if set.
func StartSymbol(name string) LoaderOption {
	return func(l *loader) {
		l.start = name
	}
}

// Strict turns lines and alternatives which would otherwise be skipped
// into errors. Default is configuration key "cyk.strict".
func Strict(b bool) LoaderOption {
	return func(l *loader) {
		l.strict = b
	}
}

// EpsilonMarker sets the text denoting an empty right hand side.
// Default is "ε", or configuration key "cyk.epsilon", if set.
func EpsilonMarker(marker string) LoaderOption {
	return func(l *loader) {
		if marker != "" {
			l.epsilon = marker
		}
	}
}

// Name sets the name of the grammar.
func Name(name string) LoaderOption {
	return func(l *loader) {
		l.name = name
	}
}

type loader struct {
	name    string
	start   string
	strict  bool
	epsilon string
	lhs     map[string]bool // left hand sides of all well-formed lines
	first   string          // left hand side of the first well-formed line
	skipped int
}

func newLoader(opts []LoaderOption) *loader {
	l := &loader{
		name:    "G",
		start:   gconf.GetString("cyk.start"),
		strict:  gconf.GetBool("cyk.strict"),
		epsilon: Epsilon,
		lhs:     make(map[string]bool),
	}
	if marker := gconf.GetString("cyk.epsilon"); marker != "" {
		l.epsilon = marker
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads a grammar from a rule file. If the file cannot be read,
// a *SourceError is returned. See Load for the format of rules.
func LoadFile(path string, opts ...LoaderOption) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(&SourceError{Source: path, Err: err})
	}
	defer f.Close()
	opts = append([]LoaderOption{Name(filepath.Base(path))}, opts...)
	return Load(f, opts...)
}

// LoadString reads a grammar from a string. See Load.
func LoadString(rules string, opts ...LoaderOption) (*Grammar, error) {
	return Load(strings.NewReader(rules), opts...)
}

// Load reads a grammar from rule text. Every line holds the rules for a
// left hand side symbol:
//
//     S -> AB | BC | ε
//     A -> BA | a
//
// Blank lines and lines starting with '#' are ignored.
// Alternatives are either the empty-marker (ε), a single character (a
// terminal), the name of a non-terminal (a unit production), or two
// non-terminals. Non-terminals may be separated by whitespace or be
// concatenated, as in "AB". Concatenations must split into known
// non-terminals in exactly one way, otherwise loading fails with an
// *AmbiguousRHSError.
//
// Malformed lines and alternatives not expressible in normal form are skipped
// with a warning, unless option Strict is set.
func Load(r io.Reader, opts ...LoaderOption) (*Grammar, error) {
	l := newLoader(opts)
	lines, err := l.read(r)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(l.name)
	if l.start == "" {
		// the first rule registered may come from a later line
		l.start = l.first
	}
	b.Start(l.start)
	for _, rl := range lines {
		for _, alt := range rl.alts {
			if err := l.addAlternative(b, rl, alt); err != nil {
				return nil, err
			}
		}
	}
	if l.skipped > 0 {
		tracer().Infof("grammar %s: skipped %d line(s) or alternative(s)", l.name, l.skipped)
	}
	return b.Grammar()
}

// read splits all rule lines and collects the left hand side symbols.
func (l *loader) read(r io.Reader) ([]*ruleLine, error) {
	var lines []*ruleLine
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rl, err := splitLine(line, lineno)
		if err != nil {
			if err = l.skip(err); err != nil {
				return nil, err
			}
			continue
		}
		if l.first == "" {
			l.first = rl.lhs
		}
		l.lhs[rl.lhs] = true
		lines = append(lines, rl)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(&SourceError{Source: l.name, Err: err})
	}
	return lines, nil
}

// skip reports a problem. In strict mode the problem is returned as an
// error, otherwise it is traced and nil is returned.
func (l *loader) skip(err error) error {
	if l.strict {
		return errors.WithStack(err)
	}
	tracer().Infof("skipping: %v", err)
	l.skipped++
	return nil
}

func (l *loader) addAlternative(b *Builder, rl *ruleLine, alt string) error {
	if alt == "" {
		return l.skip(&MalformedRuleError{Line: rl.lineno, Text: rl.text, Reason: "empty alternative"})
	}
	nonCNF := func(reason string) error {
		return l.skip(&NonCNFRuleError{Line: rl.lineno, LHS: Symbol(rl.lhs), RHS: alt, Reason: reason})
	}
	if alt == l.epsilon {
		b.LHS(rl.lhs).Epsilon()
		return nil
	}
	if fields := strings.Fields(alt); len(fields) > 1 {
		if len(fields) > 2 {
			return nonCNF("more than two symbols")
		}
		for _, field := range fields {
			if !l.lhs[field] {
				if utf8.RuneCountInString(field) == 1 {
					return nonCNF("binary rules must not contain terminals")
				}
				return nonCNF("unknown symbol " + field)
			}
		}
		b.LHS(rl.lhs).N(fields[0]).N(fields[1]).End()
		return nil
	}
	splits := l.splits(alt)
	if l.lhs[alt] { // unit production
		if len(splits) > 0 {
			splits = append([]Pair{{Left: Symbol(alt)}}, splits...)
			return errors.WithStack(&AmbiguousRHSError{Line: rl.lineno, RHS: alt, Splits: splits})
		}
		b.LHS(rl.lhs).N(alt).End()
		return nil
	}
	if utf8.RuneCountInString(alt) == 1 {
		b.LHS(rl.lhs).T(alt).End()
		return nil
	}
	switch len(splits) {
	case 0:
		return nonCNF("cannot split into two non-terminals")
	case 1:
		b.LHS(rl.lhs).N(string(splits[0].Left)).N(string(splits[0].Right)).End()
		return nil
	}
	return errors.WithStack(&AmbiguousRHSError{Line: rl.lineno, RHS: alt, Splits: splits})
}

// splits returns all ways to split rhs into two known non-terminals.
func (l *loader) splits(rhs string) []Pair {
	var splits []Pair
	for i := range rhs {
		if i == 0 {
			continue
		}
		left, right := rhs[:i], rhs[i:]
		if l.lhs[left] && l.lhs[right] {
			splits = append(splits, Pair{Left: Symbol(left), Right: Symbol(right)})
		}
	}
	return splits
}
