package grammar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Builder is a type for specifying grammars. Clients call LHS for every rule
// and then add right hand side symbols with N (non-terminal) and T
// (terminal). Every rule has to be finished with a call to End or Epsilon.
//
//     b := NewBuilder("G")
//     b.LHS("S").N("A").N("B").End()   // S  ->  A B
//     b.LHS("A").T("a").End()          // A  ->  a
//     b.LHS("S").Epsilon()             // S  ->  ε
//     g, err := b.Grammar()
//
// Unless set explicitly with Start, the start symbol is the left hand side
// of the first rule.
type Builder struct {
	g     *Grammar
	start Symbol
	lhs   Symbol
	rhs   []Symbol
	terms []bool // for each symbol in rhs: is it a terminal?
	errs  []error
	done  bool
}

// NewBuilder returns a new builder for a grammar.
func NewBuilder(name string) *Builder {
	return &Builder{g: newGrammar(name)}
}

// Start pre-assigns the start symbol.
func (b *Builder) Start(name string) *Builder {
	b.start = Symbol(name)
	return b
}

// LHS starts a new rule with a given left hand side symbol.
func (b *Builder) LHS(name string) *Builder {
	b.lhs = Symbol(name)
	b.rhs = b.rhs[:0]
	b.terms = b.terms[:0]
	return b
}

// N appends a non-terminal to the right hand side of the current rule.
func (b *Builder) N(name string) *Builder {
	b.rhs = append(b.rhs, Symbol(name))
	b.terms = append(b.terms, false)
	return b
}

// T appends a terminal to the right hand side of the current rule.
// Terminals are single characters.
func (b *Builder) T(name string) *Builder {
	b.rhs = append(b.rhs, Symbol(name))
	b.terms = append(b.terms, true)
	return b
}

// Epsilon finishes the current rule as an ε-production, i.e. with an empty
// right hand side. Symbols appended before are discarded.
func (b *Builder) Epsilon() *Rule {
	b.rhs = b.rhs[:0]
	b.terms = b.terms[:0]
	return b.End()
}

// End finishes the current rule and returns it. Rules violating the normal form
// are not added to the grammar; End will return nil for them, and the error
// will be reported by Grammar.
// A rule with an empty right hand side is an ε-production.
func (b *Builder) End() *Rule {
	if b.done {
		b.errs = append(b.errs, errors.New("grammar builder used after grammar has been created"))
		return nil
	}
	if err := b.check(); err != nil {
		b.errs = append(b.errs, err)
		return nil
	}
	r := &Rule{LHS: b.lhs, RHS: make([]Symbol, len(b.rhs))}
	copy(r.RHS, b.rhs)
	for i, A := range b.rhs {
		if b.terms[i] {
			b.g.terminals.Add(A)
		} else {
			b.g.nonterminals.Add(A)
		}
	}
	if b.g.start == "" {
		b.g.start = r.LHS
	}
	b.g.register(r)
	tracer().Debugf("rule %3d: %s", r.Serial, r)
	return r
}

func (b *Builder) check() error {
	if strings.TrimSpace(string(b.lhs)) == "" {
		return &MalformedRuleError{Text: b.rhsString(), Reason: "missing left hand side"}
	}
	switch len(b.rhs) {
	case 0:
		return nil
	case 1:
		if b.terms[0] && !b.rhs[0].IsChar() {
			return b.nonCNF("terminal must be a single character")
		}
		return nil
	case 2:
		if b.terms[0] || b.terms[1] {
			return b.nonCNF("binary rules must not contain terminals")
		}
		return nil
	}
	return b.nonCNF(fmt.Sprintf("right hand side has %d symbols", len(b.rhs)))
}

func (b *Builder) nonCNF(reason string) error {
	return &NonCNFRuleError{LHS: b.lhs, RHS: b.rhsString(), Reason: reason}
}

func (b *Builder) rhsString() string {
	rhs := make([]string, len(b.rhs))
	for i, A := range b.rhs {
		rhs[i] = string(A)
	}
	return strings.Join(rhs, " ")
}

// Grammar returns the grammar built so far, or the first error reported
// for a rule. The builder must not be used afterwards.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.errs) > 0 {
		return nil, errors.Wrapf(b.errs[0], "grammar %s has %d erroneous rule(s)", b.g.Name, len(b.errs))
	}
	if b.g.Size() == 0 {
		return nil, errors.Errorf("grammar %s has no rules", b.g.Name)
	}
	if b.start != "" {
		b.g.start = b.start
		if !b.g.nonterminals.Contains(b.start) {
			tracer().Infof("start symbol %s of grammar %s has no rules", b.start, b.g.Name)
		}
	}
	b.g.analyse()
	b.done = true
	tracer().Infof("grammar %s: %d rules, %d non-terminals, start symbol %s",
		b.g.Name, b.g.Size(), b.g.nonterminals.Size(), b.g.start)
	return b.g, nil
}
