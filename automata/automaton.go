package automata

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
)

// State is a state of an automaton. States are numbered from 0 upwards.
type State int

// Symbol is an input symbol of an automaton, i.e. the name of a non-terminal or
// the literal content of a terminal.
type Symbol string

// Epsilon is the marker for transitions which do not consume input.
// Neither terminals nor non-terminals may be empty, therefore the empty string
// is free to serve as the marker.
const Epsilon Symbol = ""

// IsEpsilon is true for the epsilon marker.
func (sym Symbol) IsEpsilon() bool {
	return sym == Epsilon
}

// Edge is a transition, originating at a state which is implicit.
type Edge struct {
	Symbol Symbol // Epsilon or a member of the automaton's symbol set
	Target State
}

// Automaton is a finite automaton, either an NFA or a DFA.
//
// An Automaton is immutable. Use a Builder to create one.
type Automaton struct {
	initial State
	size    int                // states are 0 … size-1
	finals  *treeset.Set       // of int
	symbols *linkedhashset.Set // of Symbol, in order of appearance
	edges   map[State][]Edge   // origin -> edges, in order of insertion
}

// Initial returns the initial state, which is always 0.
func (a *Automaton) Initial() State {
	return a.initial
}

// Size returns the number of states. States are numbered 0 … Size()-1.
func (a *Automaton) Size() int {
	return a.size
}

// Finals returns the accepting states in ascending order.
func (a *Automaton) Finals() []State {
	finals := make([]State, 0, a.finals.Size())
	for _, v := range a.finals.Values() {
		finals = append(finals, State(v.(int)))
	}
	return finals
}

// IsFinal is true if s is an accepting state.
func (a *Automaton) IsFinal(s State) bool {
	return a.finals.Contains(int(s))
}

// Symbols returns the set of non-epsilon symbols, in order of their first
// appearance.
func (a *Automaton) Symbols() []Symbol {
	syms := make([]Symbol, 0, a.symbols.Size())
	for _, v := range a.symbols.Values() {
		syms = append(syms, v.(Symbol))
	}
	return syms
}

// HasSymbol is true if sym is in the symbol set. Epsilon is never part of
// the symbol set.
func (a *Automaton) HasSymbol(sym Symbol) bool {
	return a.symbols.Contains(sym)
}

// Edges returns the transitions leaving state s, in order of insertion.
func (a *Automaton) Edges(s State) []Edge {
	edges := a.edges[s]
	if len(edges) == 0 {
		return nil
	}
	return append([]Edge(nil), edges...)
}

// Transitions returns a copy of all transitions, grouped by origin. States
// without outgoing transitions are not included.
func (a *Automaton) Transitions() map[State][]Edge {
	m := make(map[State][]Edge, len(a.edges))
	for s, edges := range a.edges {
		if len(edges) > 0 {
			m[s] = append([]Edge(nil), edges...)
		}
	}
	return m
}

// EdgeCount returns the total number of transitions.
func (a *Automaton) EdgeCount() int {
	n := 0
	for _, edges := range a.edges {
		n += len(edges)
	}
	return n
}

// Next returns the target of the first transition from s labeled with sym.
// For DFAs this is the one and only target.
func (a *Automaton) Next(s State, sym Symbol) (State, bool) {
	for _, e := range a.edges[s] {
		if e.Symbol == sym {
			return e.Target, true
		}
	}
	return 0, false
}

// IsDeterministic is true if the automaton has no epsilon transitions and no
// state has more than one transition for a symbol.
func (a *Automaton) IsDeterministic() bool {
	for _, edges := range a.edges {
		seen := make(map[Symbol]bool, len(edges))
		for _, e := range edges {
			if e.Symbol.IsEpsilon() || seen[e.Symbol] {
				return false
			}
			seen[e.Symbol] = true
		}
	}
	return true
}

func (a *Automaton) String() string {
	if a == nil {
		return "[nil automaton]"
	}
	return fmt.Sprintf("[automaton |Q|=%d |Σ|=%d |F|=%d]", a.size, a.symbols.Size(), a.finals.Size())
}

// --- Builder ---------------------------------------------------------------

// Builder creates an Automaton step by step. A fresh builder holds exactly
// one state, the initial state 0.
//
// A builder must not be used any more after Automaton() has been called.
type Builder struct {
	a *Automaton
}

// NewBuilder creates a builder for an automaton with initial state 0.
func NewBuilder() *Builder {
	return &Builder{a: &Automaton{
		initial: 0,
		size:    1,
		finals:  treeset.NewWithIntComparator(),
		symbols: linkedhashset.New(),
		edges:   make(map[State][]Edge),
	}}
}

// NewState allocates the next state.
func (b *Builder) NewState() State {
	s := State(b.a.size)
	b.a.size++
	return s
}

// Size returns the number of states allocated so far.
func (b *Builder) Size() int {
	return b.a.size
}

// AddSymbol registers sym with the symbol set. Registering a symbol twice has
// no effect, nor has registering Epsilon.
func (b *Builder) AddSymbol(sym Symbol) {
	if !sym.IsEpsilon() {
		b.a.symbols.Add(sym)
	}
}

// AddEdge appends a transition from origin to target, labeled with sym.
// The symbol is registered with the symbol set, if necessary.
// AddEdge panics if one of the states has not been allocated.
func (b *Builder) AddEdge(origin State, sym Symbol, target State) {
	b.checkState(origin)
	b.checkState(target)
	b.AddSymbol(sym)
	b.a.edges[origin] = append(b.a.edges[origin], Edge{Symbol: sym, Target: target})
}

// AddEpsilon appends an epsilon transition from origin to target.
func (b *Builder) AddEpsilon(origin, target State) {
	b.AddEdge(origin, Epsilon, target)
}

// MarkFinal adds s to the set of accepting states.
func (b *Builder) MarkFinal(s State) {
	b.checkState(s)
	b.a.finals.Add(int(s))
}

// Automaton returns the automaton built so far.
func (b *Builder) Automaton() *Automaton {
	a := b.a
	b.a = nil
	return a
}

func (b *Builder) checkState(s State) {
	if s < 0 || int(s) >= b.a.size {
		panic(fmt.Sprintf("automata: state %d not allocated (size is %d)", s, b.a.size))
	}
}
