package metagrammar

import (
	"errors"
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
)

var globalRuleGrammar *lr.LRAnalysis

var initGrammar sync.Once

func getParser() *earley.Parser {
	initGrammar.Do(func() {
		globalRuleGrammar = NewRuleGrammar()
	})
	parser := earley.NewParser(globalRuleGrammar)
	if parser == nil {
		panic("could not create parser for Wirth syntax notation")
	}
	return parser
}

// NewRuleGrammar creates the grammar for a single rule in Wirth syntax notation.
// It is usually not called by clients directly, but rather used transparently
// with a call to Parse.
func NewRuleGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("WSN")
	b.LHS("Rule").N("Expression").T(tok(Period)).End()
	b.LHS("Rule").T(tok(Period)).End() // empty rule
	//
	b.LHS("Expression").N("Item").End()
	b.LHS("Expression").N("Expression").N("Item").End()
	b.LHS("Item").N("Term").End()
	b.LHS("Item").T(tok(Bar)).End() // empty alternatives are legal
	//
	b.LHS("Term").T(tok(Name)).End()
	b.LHS("Term").T(tok(Literal)).End()
	b.LHS("Term").T(tok(LParen)).N("Expression").T(tok(RParen)).End()
	b.LHS("Term").T(tok(LParen)).T(tok(RParen)).End()
	b.LHS("Term").T(tok(LBrack)).N("Expression").T(tok(RBrack)).End()
	b.LHS("Term").T(tok(LBrack)).T(tok(RBrack)).End()
	b.LHS("Term").T(tok(LBrace)).N("Expression").T(tok(RBrace)).End()
	b.LHS("Term").T(tok(LBrace)).T(tok(RBrace)).End()
	//
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func tok(tokval int) (string, int) {
	return TokenString(tokval), tokval
}

// Parse checks a rule against the grammar of Wirth syntax notation.
// It returns true if the rule is well-formed.
func Parse(rule string) (bool, error) {
	return ParseTokens(NewScanner(rule))
}

// ParseTokens checks the tokens delivered by a scanner against the grammar of
// Wirth syntax notation.
func ParseTokens(scan *Scanner) (bool, error) {
	if scan == nil {
		return false, errors.New("expected parameter scan to be non-nil")
	}
	var scanErr error
	scan.SetErrorHandler(func(err error) {
		if scanErr == nil {
			scanErr = err
		}
	})
	parser := getParser()
	accept, err := parser.Parse(scan, nil)
	if err == nil {
		err = scanErr
	}
	T().Debugf("rule accepted = %v", accept)
	return accept && scanErr == nil, err
}
