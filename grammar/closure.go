package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Closure computes the set of all non-terminals deriving symbol A by a chain
// of one or more steps, where each step is either a terminal rule X → a,
// a unit production X → Y, or a binary rule X → Y Z (X → Z Y) with Z nullable.
//
// The closure is computed breadth-first. Every symbol enters the worklist at
// most once, therefore cyclic unit productions (A → B, B → A) are harmless
// and the result is bounded by the number of non-terminals.
//
// A itself is part of the result only if it derives itself by such a chain.
//
// Terminals and the right hand sides of unit productions are looked up in
// the same index. A terminal spelled like a non-terminal therefore yields the
// closure of that non-terminal: with rules X → A and A → a, both "a" and "A"
// are derived by X.
func (g *Grammar) Closure(A Symbol) *SymbolSet {
	C := NewSymbolSet()
	worklist := arraylist.New(A)
	g.closeOver(worklist, C)
	tracer().Debugf("closure(%s) = %s", A, C)
	return C
}

// CloseSet returns a new set, containing all members of S and all
// non-terminals deriving any of them (see Closure).
func (g *Grammar) CloseSet(S *SymbolSet) *SymbolSet {
	C := S.Copy()
	worklist := arraylist.New()
	S.Each(func(A Symbol) {
		worklist.Add(A)
	})
	g.closeOver(worklist, C)
	return C
}

// closeOver works through a worklist of symbols. The worklist grows while
// we iterate over it; symbols are enqueued when they first enter C.
func (g *Grammar) closeOver(worklist *arraylist.List, C *SymbolSet) {
	for i := 0; i < worklist.Size(); i++ {
		x, _ := worklist.Get(i)
		A := x.(Symbol)
		enqueue := func(B Symbol) {
			if C.Add(B) {
				worklist.Add(B)
			}
		}
		g.singles[A].Each(enqueue)
		g.derived[A].Each(enqueue)
	}
}

// HasUnitSteps is a predicate: may the closure of a non-terminal contain
// other non-terminals? This is the case for grammars with unit productions
// or ε-productions. For grammars in strict normal form, CloseSet is a no-op
// for sets of non-terminals.
func (g *Grammar) HasUnitSteps() bool {
	return len(g.derived) > 0 || g.HasUnits()
}
