package wirth

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/wirth/automata"
	"github.com/npillmayer/wirth/metagrammar"
)

// Rule is a single grammar rule in Wirth syntax notation, together with the
// NFA recognizing the token sequences the rule describes.
//
// The NFA is built once, when the rule is created. The minimized DFA is derived
// from it on first request and cached for the lifetime of the rule.
type Rule struct {
	text    string
	nfa     *automata.Automaton
	dfa     *automata.Automaton
	trace   string
	algebra automata.Algebra
}

// NewRule scans a rule and builds its NFA. If the rule is malformed, NewRule
// returns a *SyntaxError and no rule.
//
// A rule has to be terminated by a period:
//
//     rule, err := wirth.NewRule(`"if" expr "then" stmt [ "else" stmt ] .`)
//
func NewRule(text string, opts ...Option) (*Rule, error) {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(conf)
	}
	b := newBuilder(text, conf)
	nfa, trace, err := b.build()
	if err != nil {
		T().Errorf("rule %q rejected: %v", text, err)
		return nil, err
	}
	if conf.hasMode(optionCheckSyntax) {
		if ok, err := metagrammar.Parse(text); !ok || err != nil {
			T().Errorf("rule %q rejected by meta-grammar: %v", text, err)
			return nil, &SyntaxError{Kind: ErrInvalidToken, Detail: "rule does not conform to Wirth syntax notation"}
		}
	}
	T().Infof("rule %q: NFA with %d states, %d transitions", text, nfa.Size(), nfa.EdgeCount())
	return &Rule{
		text:    text,
		nfa:     nfa,
		trace:   trace,
		algebra: conf.algebra,
	}, nil
}

// Text returns the rule's source text.
func (r *Rule) Text() string {
	return r.text
}

// NFA returns the non-deterministic automaton for the rule.
func (r *Rule) NFA() *automata.Automaton {
	return r.nfa
}

// DFA returns the minimized deterministic automaton for the rule. It is computed
// on the first call; subsequent calls return the cached automaton.
func (r *Rule) DFA() *automata.Automaton {
	if r.dfa == nil {
		r.dfa = r.algebra.MinimizeDFA(r.algebra.NFAToDFA(r.nfa))
		T().Debugf("rule %q: minimized DFA has %d states", r.text, r.dfa.Size())
	}
	return r.dfa
}

// Trace returns the rule text annotated with the states assigned during the
// scan. It is meant for debugging only; the format may change.
func (r *Rule) Trace() string {
	return r.trace
}

// Accepts is true if the sequence of symbols matches the rule.
func (r *Rule) Accepts(symbols ...string) bool {
	syms := make([]automata.Symbol, len(symbols))
	for i, s := range symbols {
		syms[i] = automata.Symbol(s)
	}
	return automata.Accepts(r.DFA(), syms...)
}

// Recognize reads tokens from a tokenizer until EOF and checks whether the
// sequence of token lexemes matches the rule. Reading stops as soon as the
// match is impossible. Errors reported by the tokenizer abort recognition.
func (r *Rule) Recognize(tok scanner.Tokenizer) (bool, error) {
	var tokErr error
	tok.SetErrorHandler(func(err error) {
		if tokErr == nil {
			tokErr = err
		}
	})
	rec := automata.NewPooledRecognizer(r.DFA())
	defer rec.Release()
	for {
		tokval, token, _, _ := tok.NextToken(scanner.AnyToken)
		if tokErr != nil {
			return false, tokErr
		}
		if tokval == scanner.EOF {
			break
		}
		if !rec.Step(symbolOf(token)) {
			return false, nil
		}
	}
	return rec.Accepting(), nil
}

func symbolOf(token interface{}) automata.Symbol {
	switch t := token.(type) {
	case string:
		return automata.Symbol(t)
	case []byte:
		return automata.Symbol(t)
	case automata.Symbol:
		return t
	}
	return automata.Symbol(fmt.Sprint(token))
}

func (r *Rule) String() string {
	if r == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[rule %q]", r.text)
}
