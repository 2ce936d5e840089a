/*
Package cyk implements a recognizer for context-free languages, following the
algorithm of Cocke, Younger and Kasami.

Grammars have to be in Chomsky normal form, relaxed to allow for unit
productions and ε-productions (see package grammar). The recognizer fills a
triangular chart with the non-terminals deriving every substring of the
input, bottom-up by the length of substrings. The input is accepted if the
start symbol derives the complete input. Running time is cubic in the length
of the input.

Usage

     g, err := grammar.LoadFile("CFG.txt")
     …
     r := cyk.NewRecognizer(g)
     accepted, chart, err := r.Recognize("aabb")

Recognizers hold no state besides their configuration and the grammar, which
is immutable. Clients may therefore use a single recognizer from more than
one goroutine; every call to Recognize creates its own chart.

Configuration

Configuration key "cyk.max-input" sets a default for the maximum input length
(see option MaxInputLength). Key "cyk.expand-spans" switches on closing
cells of substrings longer than one character under unit steps (see option
ExpandSpans).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.cyk")
}
