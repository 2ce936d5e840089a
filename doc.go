/*
Package gocyk is a small toolbox for recognizing context-free languages with the
Cocke-Younger-Kasami (CYK) algorithm.

Package structure is as follows:

■ grammar: Package grammar holds grammars in Chomsky normal form (optionally with
ε-productions and unit productions), a loader for rule files and the closure over
unit productions.

■ chart: Package chart implements the triangular chart of the CYK algorithm,
together with renderers for inspecting it.

■ cyk: Package cyk fills a chart for an input string and decides membership.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocyk
