package automata

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// A Recognizer runs a deterministic automaton over a sequence of symbols.
// Symbols are fed one at a time with Step. As soon as no transition exists for
// a symbol, the recognizer is done and will reject any further input.
//
// Recognizers are short-lived objects; clients should use NewPooledRecognizer
// and call Release when finished.
type Recognizer struct {
	MatchLen int // number of symbols matched so far
	dfa      *Automaton
	current  State
	aborted  bool
}

// NewRecognizer creates a new Recognizer for dfa, positioned at the initial state.
// This is rarely used, as clients rather should call NewPooledRecognizer().
func NewRecognizer(dfa *Automaton) *Recognizer {
	rec := &Recognizer{}
	rec.reset(dfa)
	return rec
}

type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Recognizer{}, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a Recognizer for dfa, positioned at the initial
// state. The Recognizer is pooled for efficiency; clients should call Release
// when done.
func NewPooledRecognizer(dfa *Automaton) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		T().Errorf("cannot borrow recognizer from pool: %v", err)
		return NewRecognizer(dfa)
	}
	rec := o.(*Recognizer)
	rec.reset(dfa)
	return rec
}

func (rec *Recognizer) reset(dfa *Automaton) {
	rec.dfa = dfa
	rec.current = dfa.Initial()
	rec.MatchLen = 0
	rec.aborted = false
}

// Release clears the Recognizer and puts it back into the pool.
// The recognizer must not be used afterwards.
func (rec *Recognizer) Release() {
	rec.dfa = nil
	rec.current = 0
	rec.MatchLen = 0
	rec.aborted = false
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Step consumes sym. It returns false if the automaton has no transition for
// sym, which aborts the recognizer.
func (rec *Recognizer) Step(sym Symbol) bool {
	if rec.aborted {
		return false
	}
	next, ok := rec.dfa.Next(rec.current, sym)
	if !ok {
		T().Debugf("recognizer: no transition from %d for %q", rec.current, sym)
		rec.aborted = true
		return false
	}
	rec.current = next
	rec.MatchLen++
	return true
}

// Accepting is true if the symbols consumed so far form an accepted sequence.
func (rec *Recognizer) Accepting() bool {
	return !rec.aborted && rec.dfa.IsFinal(rec.current)
}

// Done is true once the recognizer has aborted.
func (rec *Recognizer) Done() bool {
	return rec.aborted
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil recognizer]"
	}
	return fmt.Sprintf("[at %d, matched=%d, done=%v]", rec.current, rec.MatchLen, rec.Done())
}

// Accepts is true if dfa accepts the sequence of symbols.
func Accepts(dfa *Automaton, symbols ...Symbol) bool {
	rec := NewPooledRecognizer(dfa)
	defer rec.Release()
	for _, sym := range symbols {
		if !rec.Step(sym) {
			return false
		}
	}
	return rec.Accepting()
}
