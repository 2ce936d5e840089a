/*
Package grammar implements grammars for CYK recognition.

Grammars are in Chomsky normal form, relaxed by two conventions: rules may
derive the empty string (ε-productions) and rules may have a single
non-terminal on their right hand side (unit productions). Grammars are
indexed in reverse, i.e. for every right hand side the set of left hand side
symbols producing it may be looked up in constant time.

Building a Grammar

Grammars are either specified using a grammar builder object or loaded from
a rule file.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").N("B").End()  // S  ->  A B
    b.LHS("S").Epsilon()            // S  ->  ε
    b.LHS("A").T("a").End()         // A  ->  a
    b.LHS("B").T("b").End()         // B  ->  b
    g, err := b.Grammar()

The same grammar as a rule file:

    S -> AB | ε
    A -> a
    B -> b

Lines which do not match the form `LHS -> RHS | RHS …` are skipped, unless the
loader is set to strict mode. Concatenated right hand sides are split into
known non-terminals; if there is more than one way to split them, loading fails.

Closure

Unit productions (and ε-productions of non-terminals used within binary rules)
create indirect derivations. Grammar.Closure computes every non-terminal
deriving a symbol by a chain of such steps. It is used to initialize the
chart cells of a CYK recognizer.

Configuration

The loader consults the global configuration (schuko/gconf) for default
settings: "cyk.strict" (bool), "cyk.epsilon" (marker for the empty right hand
side) and "cyk.start" (name of the start symbol). Loader options override them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.grammar")
}
