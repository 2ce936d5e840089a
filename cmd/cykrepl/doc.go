/*
Package cykrepl/main provides an interactive command line tool (CYK.REPL)
for testing inputs against a context-free grammar. The grammar is read from
a rule file (default "CFG.txt") and has to be in Chomsky normal form, relaxed
to allow for unit productions and ε-productions.

Inputs given as command line arguments are tested once, and the exit code
tells whether the input has been accepted (0) or rejected (1). Without
arguments, CYK.REPL reads inputs line by line. Lines starting with a colon
are commands:

     :grammar     display the rules of the grammar
     :table       toggle display of the CYK chart
     :quit        leave CYK.REPL

A line consisting of "" tests the empty input.

Configuration

Settings may be read from a configuration file in NestedText format
(flag -config), and are overridden by command line flags:

     cyk:
       strict: true
       epsilon: <eps>
       start: S
       max-input: 200
       expand-spans: true
     tracelevel:
       gocyk.cyk: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.repl'
func tracer() tracing.Trace {
	return tracing.Select("gocyk.repl")
}
