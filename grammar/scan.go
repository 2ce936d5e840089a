package grammar

import (
	"strings"
	"sync"

	"github.com/npillmayer/gocyk"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of rule lines.
const (
	tokEOF gocyk.TokType = iota - 1
	_
	tokArrow  // '->'
	tokBar    // '|'
	tokSymbol // any other character except whitespace
)

var tokenNames = map[gocyk.TokType]string{
	tokEOF:    "EOF",
	tokArrow:  "->",
	tokBar:    "|",
	tokSymbol: "SYMBOL",
}

// ruleToken is the token type of the rule line scanner.
type ruleToken struct {
	kind   gocyk.TokType
	lexeme string
	span   gocyk.Span
}

var _ gocyk.Token = ruleToken{}

func (t ruleToken) TokType() gocyk.TokType {
	return t.kind
}

func (t ruleToken) Lexeme() string {
	return t.lexeme
}

func (t ruleToken) Span() gocyk.Span {
	return t.span
}

func (t ruleToken) String() string {
	return tokenNames[t.kind] + "@" + t.span.String()
}

// --- lexmachine DFA --------------------------------------------------------

// The DFA for rule lines is compiled once and shared by all loaders.
// Symbol tokens are single bytes; only arrows and bars are of interest for
// splitting a line, the text between them is taken from the line itself.
// On matches of equal length, patterns added first take precedence.
var ruleLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

func lexer() (*lexmachine.Lexer, error) {
	ruleLexer.once.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`->`), makeToken(tokArrow))
		lexer.Add([]byte(`\|`), makeToken(tokBar))
		lexer.Add([]byte(`( |\t|\r|\n)+`), skip)
		lexer.Add([]byte(`.`), makeToken(tokSymbol))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA for rule lines: %v", err)
			ruleLexer.err = err
			return
		}
		ruleLexer.lexer = lexer
	})
	return ruleLexer.lexer, ruleLexer.err
}

// skip is a lexmachine action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexmachine action which wraps a scanned match into a token.
func makeToken(kind gocyk.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// lineScanner tokenizes a single rule line.
type lineScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

func newLineScanner(line string) (*lineScanner, error) {
	lexer, err := lexer()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	return &lineScanner{scanner: s, Error: logError}, nil
}

// Default error reporting function for the line scanner.
func logError(e error) {
	tracer().Debugf("rule scanner: %v", e)
}

// NextToken returns the next token of the line, or a token of type EOF.
func (ls *lineScanner) NextToken() gocyk.Token {
	tok, err, eof := ls.scanner.Next()
	for err != nil {
		ls.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			ls.scanner.TC = ui.FailTC
		}
		tok, err, eof = ls.scanner.Next()
	}
	if eof {
		return ruleToken{kind: tokEOF}
	}
	token := tok.(*lexmachine.Token)
	return ruleToken{
		kind:   gocyk.TokType(token.Type),
		lexeme: string(token.Lexeme),
		span:   gocyk.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// --- Splitting rule lines --------------------------------------------------

// ruleLine is a rule line split into its parts.
type ruleLine struct {
	lineno int
	text   string
	lhs    string
	alts   []string // alternatives, trimmed, maybe empty strings
}

// splitLine splits a line of the form
//
//     LHS -> RHS_1 | RHS_2 | … | RHS_k
//
// into the left hand side and the alternatives on the right hand side.
// Whitespace around every part is removed.
func splitLine(line string, lineno int) (*ruleLine, error) {
	sc, err := newLineScanner(line)
	if err != nil {
		return nil, err
	}
	var arrows, bars []gocyk.Span
	for tok := sc.NextToken(); tok.TokType() != tokEOF; tok = sc.NextToken() {
		switch tok.TokType() {
		case tokArrow:
			arrows = append(arrows, tok.Span())
		case tokBar:
			bars = append(bars, tok.Span())
		}
	}
	malformed := func(reason string) error {
		return &MalformedRuleError{Line: lineno, Text: line, Reason: reason}
	}
	if len(arrows) != 1 {
		if len(arrows) == 0 {
			return nil, malformed("missing '->'")
		}
		return nil, malformed("more than one '->'")
	}
	arrow := arrows[0]
	if len(bars) > 0 && bars[0].From() < arrow.From() {
		return nil, malformed("'|' within left hand side")
	}
	rl := &ruleLine{
		lineno: lineno,
		text:   line,
		lhs:    strings.TrimSpace(line[:arrow.From()]),
	}
	if rl.lhs == "" {
		return nil, malformed("missing left hand side")
	}
	if strings.ContainsAny(rl.lhs, " \t") {
		return nil, malformed("left hand side is not a single symbol")
	}
	from := arrow.To()
	for _, bar := range bars {
		rl.alts = append(rl.alts, strings.TrimSpace(line[from:bar.From()]))
		from = bar.To()
	}
	rl.alts = append(rl.alts, strings.TrimSpace(line[from:]))
	return rl, nil
}
