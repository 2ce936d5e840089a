package grammar

import (
	"fmt"
	"strings"
)

// MalformedRuleError is reported for rule lines which do not match the form
//
//     LHS -> RHS | RHS …
//
// The loader skips such lines, unless it operates in strict mode.
type MalformedRuleError struct {
	Line   int    // line number within the rule source, starting at 1
	Text   string // the offending line
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule in line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// NonCNFRuleError is reported for right hand sides which cannot be
// expressed in (relaxed) Chomsky normal form.
type NonCNFRuleError struct {
	Line   int // 0 for rules created by a Builder
	LHS    Symbol
	RHS    string
	Reason string
}

func (e *NonCNFRuleError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rule %s -> %s in line %d is not in normal form: %s", e.LHS, e.RHS, e.Line, e.Reason)
	}
	return fmt.Sprintf("rule %s -> %s is not in normal form: %s", e.LHS, e.RHS, e.Reason)
}

// AmbiguousRHSError is reported if a concatenated right hand side may be
// split into non-terminals in more than one way. This happens if the name of
// a non-terminal is a prefix of another one's.
type AmbiguousRHSError struct {
	Line   int
	RHS    string
	Splits []Pair
}

func (e *AmbiguousRHSError) Error() string {
	splits := make([]string, len(e.Splits))
	for i, p := range e.Splits {
		if p.Right == "" {
			splits[i] = string(p.Left)
		} else {
			splits[i] = string(p.Left) + " " + string(p.Right)
		}
	}
	return fmt.Sprintf("right hand side %q in line %d is ambiguous: [%s]",
		e.RHS, e.Line, strings.Join(splits, " | "))
}

// SourceError is reported if a rule source cannot be read. No recognition is
// possible without a grammar, so clients will usually treat it as fatal.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read grammar from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Cause is for compatibility with package pkg/errors.
func (e *SourceError) Cause() error {
	return e.Err
}
