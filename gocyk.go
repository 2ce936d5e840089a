package gocyk

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are produced by scanners, e.g. the scanner
// for grammar rule lines in package grammar.
//
// An example would be the arrow of a rule line:
//
//    TokType = Arrow       // identifier for this kind of tokens (application specific)
//    Lexeme  = "->"        // lexeme how it appeared in the input
//    Span    = 2…4         // occured from position 2 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Tokens track
// the byte positions they cover, chart cells track the input characters their
// symbols derive. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// SpanOf creates a span from a start position and a length.
func SpanOf(start, length int) Span {
	return Span{uint64(start), uint64(start + length)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
