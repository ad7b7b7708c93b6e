package metagrammar

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/wirth/cursor"
)

// Token values delivered by Scanner.
const (
	Name    int = iota + 1 // non-terminal
	Literal                // quoted terminal
	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace
	Bar
	Period
	Illegal // malformed input; never matched by the grammar
)

var tokenNames = [...]string{"?", "name", "literal", "(", ")", "[", "]", "{", "}", "|", ".", "illegal"}

// TokenString returns a readable name for a token value.
func TokenString(tokval int) string {
	if tokval == scanner.EOF {
		return "EOF"
	}
	if tokval < 1 || tokval >= len(tokenNames) {
		return fmt.Sprintf("token(%d)", tokval)
	}
	return tokenNames[tokval]
}

var punctuation = map[rune]int{
	'(': LParen, ')': RParen,
	'[': LBrack, ']': RBrack,
	'{': LBrace, '}': RBrace,
	'|': Bar, '.': Period,
}

// Scanner implements the scanner.Tokenizer interface for rule texts.
type Scanner struct {
	cursor  *cursor.Cursor
	onError func(error)
}

// NewScanner creates a scanner for a rule text.
func NewScanner(rule string) *Scanner {
	return &Scanner{
		cursor: cursor.New(rule),
	}
}

// NextToken returns the next token of the rule. The lexeme of names is the
// name, the lexeme of literals is the unquoted content.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	r := sc.cursor.Read()
	for unicode.IsSpace(r) {
		r = sc.cursor.Read()
	}
	start := uint64(sc.cursor.Pos() - 1)
	switch {
	case r == cursor.EOF:
		return scanner.EOF, "", uint64(sc.cursor.Pos()), 0
	case r == '"':
		lit, ok := sc.literal()
		if !ok {
			return sc.illegal(start, "malformed terminal")
		}
		return Literal, lit, start, uint64(sc.cursor.Pos()) - start
	case isLetter(r):
		var name strings.Builder
		name.WriteRune(r)
		for r = sc.cursor.Read(); isLetter(r); r = sc.cursor.Read() {
			name.WriteRune(r)
		}
		if r != cursor.EOF {
			sc.cursor.Undo()
		}
		return Name, name.String(), start, uint64(name.Len())
	}
	if tokval, ok := punctuation[r]; ok {
		T().Debugf("scanned %s", TokenString(tokval))
		return tokval, string(r), start, 1
	}
	return sc.illegal(start, fmt.Sprintf("unexpected character %q", r))
}

// literal reads the content of a terminal, after the opening quote.
// Unterminated and empty terminals are not ok.
func (sc *Scanner) literal() (string, bool) {
	var lit strings.Builder
	for {
		r := sc.cursor.Read()
		if r == cursor.EOF {
			return "", false
		}
		if r == '"' {
			next := sc.cursor.Read()
			if next == '"' {
				lit.WriteRune('"')
				continue
			}
			if next != cursor.EOF {
				sc.cursor.Undo()
			}
			return lit.String(), lit.Len() > 0
		}
		lit.WriteRune(r)
	}
}

func (sc *Scanner) illegal(pos uint64, msg string) (int, interface{}, uint64, uint64) {
	err := fmt.Errorf("metagrammar: %s at position %d", msg, pos)
	T().Debugf("%v", err)
	if sc.onError != nil {
		sc.onError(err)
	}
	return Illegal, msg, pos, uint64(sc.cursor.Pos()) - pos
}

// SetErrorHandler sets an error handler function, which receives an error for
// every illegal token.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
