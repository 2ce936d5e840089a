package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Rule is a type for rules of a grammar. Right hand sides hold zero symbols
// (an ε-production), one symbol (a terminal or a unit production) or two
// non-terminals.
type Rule struct {
	Serial int      // ordinal no. of the rule, in order of appearance
	LHS    Symbol   // symbol on the left hand side
	RHS    []Symbol // right hand side, maybe empty
}

// IsEpsilon is a predicate: does r derive the empty string directly?
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

func (r *Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%s ➞ %s", r.LHS, Epsilon)
	}
	rhs := make([]string, len(r.RHS))
	for i, A := range r.RHS {
		rhs[i] = string(A)
	}
	return fmt.Sprintf("%s ➞ %s", r.LHS, strings.Join(rhs, " "))
}

// Pair is the key for binary right hand sides.
type Pair struct {
	Left, Right Symbol
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.Left, p.Right)
}

// Grammar is a type for grammars in (relaxed) Chomsky normal form, indexed
// in reverse: it maps right hand sides to the set of symbols producing them.
// Grammars are immutable once constructed; they may be shared between
// any number of recognizers running concurrently.
//
// Create grammars with a Builder or by loading them from a rule file.
type Grammar struct {
	Name         string
	start        Symbol
	rules        []*Rule
	nonterminals *SymbolSet
	terminals    *SymbolSet
	epsilon      *SymbolSet            // producers of ε
	singles      map[Symbol]*SymbolSet // A → a and A → B
	pairs        map[Pair]*SymbolSet   // A → B C
	nullable     *SymbolSet            // symbols deriving ε, directly or indirectly
	derived      map[Symbol]*SymbolSet // unit steps induced by nullable symbols
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		nonterminals: NewSymbolSet(),
		terminals:    NewSymbolSet(),
		epsilon:      NewSymbolSet(),
		singles:      make(map[Symbol]*SymbolSet),
		pairs:        make(map[Pair]*SymbolSet),
		nullable:     NewSymbolSet(),
		derived:      make(map[Symbol]*SymbolSet),
	}
}

// register enters a rule into the reverse index.
func (g *Grammar) register(r *Rule) {
	r.Serial = len(g.rules)
	g.rules = append(g.rules, r)
	g.nonterminals.Add(r.LHS)
	switch len(r.RHS) {
	case 0:
		g.epsilon.Add(r.LHS)
	case 1:
		addProducer(g.singles, r.RHS[0], r.LHS)
	case 2:
		key := Pair{Left: r.RHS[0], Right: r.RHS[1]}
		P, ok := g.pairs[key]
		if !ok {
			P = NewSymbolSet()
			g.pairs[key] = P
		}
		P.Add(r.LHS)
	}
}

func addProducer(index map[Symbol]*SymbolSet, rhs Symbol, lhs Symbol) {
	P, ok := index[rhs]
	if !ok {
		P = NewSymbolSet()
		index[rhs] = P
	}
	P.Add(lhs)
}

// analyse finds all nullable symbols. For every binary rule A → B C with
// B nullable, C derives A in a single (unit) step, and vice versa.
// Grammars without ε-productions are left untouched.
func (g *Grammar) analyse() {
	if g.epsilon.Empty() {
		return
	}
	g.nullable.Union(g.epsilon)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if r.IsEpsilon() || g.nullable.Contains(r.LHS) {
				continue
			}
			all := true
			for _, A := range r.RHS {
				all = all && g.nullable.Contains(A)
			}
			if all {
				g.nullable.Add(r.LHS)
				changed = true
			}
		}
	}
	for _, r := range g.rules {
		if len(r.RHS) != 2 {
			continue
		}
		if g.nullable.Contains(r.RHS[0]) {
			addProducer(g.derived, r.RHS[1], r.LHS)
		}
		if g.nullable.Contains(r.RHS[1]) {
			addProducer(g.derived, r.RHS[0], r.LHS)
		}
	}
	tracer().Debugf("nullable symbols of %s: %s", g.Name, g.nullable)
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Nonterminals returns all the non-terminal symbols of g.
// Clients must not modify the returned set.
func (g *Grammar) Nonterminals() *SymbolSet {
	return g.nonterminals
}

// Terminals returns all the terminal symbols of g.
// Clients must not modify the returned set.
func (g *Grammar) Terminals() *SymbolSet {
	return g.terminals
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in order of appearance.
func (g *Grammar) Rules() []*Rule {
	return slices.Clone(g.rules)
}

// IsNonTerminal is a predicate: is A the left hand side of a rule or used
// as a non-terminal within a right hand side?
func (g *Grammar) IsNonTerminal(A Symbol) bool {
	return g.nonterminals.Contains(A)
}

// ProducersOf returns the set of symbols which directly produce a right hand
// side. Zero symbols look up producers of ε, one symbol looks up terminal
// rules and unit productions, two symbols look up binary rules.
// If no producers are registered, an empty set is returned.
//
// Clients must not modify the returned set.
func (g *Grammar) ProducersOf(rhs ...Symbol) *SymbolSet {
	var P *SymbolSet
	switch len(rhs) {
	case 0:
		P = g.epsilon
	case 1:
		P = g.singles[rhs[0]]
	case 2:
		P = g.pairs[Pair{Left: rhs[0], Right: rhs[1]}]
	}
	if P == nil {
		return NewSymbolSet()
	}
	return P
}

// DerivesEmpty is a predicate: is A registered as a direct producer of ε?
func (g *Grammar) DerivesEmpty(A Symbol) bool {
	return g.epsilon.Contains(A)
}

// Nullable is a predicate: does A derive ε, directly or indirectly?
func (g *Grammar) Nullable(A Symbol) bool {
	return g.nullable.Contains(A)
}

// HasEpsilon is a predicate: does g contain ε-productions?
func (g *Grammar) HasEpsilon() bool {
	return !g.epsilon.Empty()
}

// HasUnits is a predicate: does g contain unit productions A → B ?
func (g *Grammar) HasUnits() bool {
	for _, r := range g.rules {
		if len(r.RHS) == 1 && g.nonterminals.Contains(r.RHS[0]) {
			return true
		}
	}
	return false
}

// IsCNF is a predicate: is g in strict Chomsky normal form?
func (g *Grammar) IsCNF() bool {
	return !g.HasEpsilon() && !g.HasUnits()
}

// EachNonTerminal iterates over all non-terminal symbols of the grammar.
// Return values of the mapper function for all non-terminals are returned as an
// array.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol) interface{}) []interface{} {
	var r = make([]interface{}, 0, g.nonterminals.Size())
	g.nonterminals.Each(func(A Symbol) {
		r = append(r, mapper(A))
	})
	return r
}

// Dump is a debugging helper, tracing all rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	nonterms := g.EachNonTerminal(func(A Symbol) interface{} {
		if g.Nullable(A) {
			return string(A) + "(ε)"
		}
		return string(A)
	})
	tracer().Debugf("non-terminals = %v", nonterms)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	keys := maps.Keys(g.pairs)
	slices.SortFunc(keys, func(p1, p2 Pair) bool {
		return p1.Left < p2.Left || p1.Left == p2.Left && p1.Right < p2.Right
	})
	for _, key := range keys {
		tracer().Debugf("    %s ⟵ %s", key, g.pairs[key])
	}
	tracer().Debugf("-------------------------------------------------------")
}

// Fingerprint returns a hash over the rules and the start symbol of g.
// The order of rules does not contribute to the fingerprint, so grammars
// recognizing the same language by the same rules have equal fingerprints.
func (g *Grammar) Fingerprint() string {
	type signature struct {
		Start string
		Rules map[string][]string
	}
	sig := signature{
		Start: string(g.start),
		Rules: make(map[string][]string, g.nonterminals.Size()),
	}
	for _, r := range g.rules {
		rhs := r.String()
		sig.Rules[string(r.LHS)] = append(sig.Rules[string(r.LHS)], rhs)
	}
	for _, lhs := range maps.Keys(sig.Rules) {
		slices.Sort(sig.Rules[lhs])
		sig.Rules[lhs] = slices.Compact(sig.Rules[lhs])
	}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}
