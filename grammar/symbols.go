package grammar

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Symbol is a grammar symbol. Terminals are single input characters,
// non-terminals are the names appearing on the left hand side of rules.
type Symbol string

// Epsilon is the default marker for an empty right hand side within rule files.
const Epsilon = "ε"

func (A Symbol) String() string {
	return string(A)
}

// IsChar is a predicate: does A consist of exactly one character?
// Only those symbols may appear as terminals.
func (A Symbol) IsChar() bool {
	return utf8.RuneCountInString(string(A)) == 1
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a set of grammar symbols. Symbols are kept ordered by name,
// which makes iteration and printing deterministic.
//
// A nil *SymbolSet behaves like an empty set for all read operations.
type SymbolSet struct {
	set *treeset.Set
}

// We need this for the set of symbols. It sorts symbols by name.
func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(string(s1.(Symbol)), string(s2.(Symbol)))
}

// NewSymbolSet creates a set, optionally containing some initial symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts a symbol into S. It returns true if A has not been
// a member of S before. Adding a member twice is a no-op.
func (S *SymbolSet) Add(A Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// Union adds all members of other to S and returns the number of
// symbols new to S.
func (S *SymbolSet) Union(other *SymbolSet) int {
	cnt := 0
	other.Each(func(A Symbol) {
		if S.Add(A) {
			cnt++
		}
	})
	return cnt
}

// Contains is a predicate: is A a member of S?
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// Size returns the number of members.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is a predicate: is S the empty set?
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the members of S, ordered by name.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return []Symbol{}
	}
	syms := make([]Symbol, 0, S.set.Size())
	for _, x := range S.set.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Each calls f for every member of S, in order.
func (S *SymbolSet) Each(f func(A Symbol)) {
	if S == nil {
		return
	}
	it := S.set.Iterator()
	for it.Next() {
		f(it.Value().(Symbol))
	}
}

// Copy returns a new set with the same members as S.
func (S *SymbolSet) Copy() *SymbolSet {
	C := NewSymbolSet()
	C.Union(S)
	return C
}

// Equals is a predicate: do S and other have the same members?
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	eq := true
	S.Each(func(A Symbol) {
		eq = eq && other.Contains(A)
	})
	return eq
}

// String returns "∅" for the empty set and "{A, B, …}" otherwise.
func (S *SymbolSet) String() string {
	if S.Empty() {
		return "∅"
	}
	var b strings.Builder
	b.WriteString("{")
	first := true
	S.Each(func(A Symbol) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(string(A))
	})
	b.WriteString("}")
	return b.String()
}
