package automata

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/sets/treeset"
)

// Algebra is the capability to transform automata. Both operations are pure:
// they must not modify their argument.
type Algebra interface {
	NFAToDFA(nfa *Automaton) *Automaton   // subset construction over epsilon-closures
	MinimizeDFA(dfa *Automaton) *Automaton // merge equivalent states
}

// Standard is the default algebra, implemented by SubsetConstruction and
// Minimize.
var Standard Algebra = standardAlgebra{}

type standardAlgebra struct{}

func (standardAlgebra) NFAToDFA(nfa *Automaton) *Automaton {
	return SubsetConstruction(nfa)
}

func (standardAlgebra) MinimizeDFA(dfa *Automaton) *Automaton {
	return Minimize(dfa)
}

// --- Subset construction ---------------------------------------------------

// SubsetConstruction creates a DFA accepting the same symbol sequences as nfa.
//
// Every state of the DFA represents the epsilon-closure of a set of NFA states.
// DFA states are numbered in order of discovery, with the closure of the NFA's
// initial state becoming state 0. The resulting DFA is partial: there is no
// trap state, missing transitions mean rejection.
func SubsetConstruction(nfa *Automaton) *Automaton {
	b := NewBuilder()
	symbols := nfa.Symbols()
	for _, sym := range symbols {
		b.AddSymbol(sym)
	}
	start := epsilonClosure(nfa, []State{nfa.Initial()})
	index := map[string]State{key(start): 0}
	subsets := [][]State{start} // indexed by DFA state
	if containsFinal(nfa, start) {
		b.MarkFinal(0)
	}
	for d := 0; d < len(subsets); d++ {
		for _, sym := range symbols {
			moved := move(nfa, subsets[d], sym)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(nfa, moved)
			k := key(closure)
			target, ok := index[k]
			if !ok {
				target = b.NewState()
				index[k] = target
				subsets = append(subsets, closure)
				if containsFinal(nfa, closure) {
					b.MarkFinal(target)
				}
			}
			b.AddEdge(State(d), sym, target)
		}
	}
	dfa := b.Automaton()
	T().Debugf("subset construction: NFA with %d states -> DFA with %d states", nfa.Size(), dfa.Size())
	return dfa
}

// epsilonClosure returns the states reachable from states by epsilon
// transitions only, including states themselves, in ascending order.
func epsilonClosure(nfa *Automaton, states []State) []State {
	closure := treeset.NewWithIntComparator()
	work := arraystack.New()
	for _, s := range states {
		closure.Add(int(s))
		work.Push(s)
	}
	for !work.Empty() {
		v, _ := work.Pop()
		for _, e := range nfa.edges[v.(State)] {
			if e.Symbol.IsEpsilon() && !closure.Contains(int(e.Target)) {
				closure.Add(int(e.Target))
				work.Push(e.Target)
			}
		}
	}
	result := make([]State, 0, closure.Size())
	for _, v := range closure.Values() {
		result = append(result, State(v.(int)))
	}
	return result
}

// move returns the targets of all transitions labeled sym, starting at one of
// states.
func move(nfa *Automaton, states []State, sym Symbol) []State {
	var targets []State
	for _, s := range states {
		for _, e := range nfa.edges[s] {
			if e.Symbol == sym {
				targets = append(targets, e.Target)
			}
		}
	}
	return targets
}

func containsFinal(a *Automaton, states []State) bool {
	for _, s := range states {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

// key creates a map key from a sorted set of states.
func key(states []State) string {
	var sb strings.Builder
	for i, s := range states {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	return sb.String()
}

// --- Minimization ----------------------------------------------------------

// Minimize merges equivalent states of a DFA, using Moore's partition
// refinement. Missing transitions are treated as transitions into an implicit
// trap state.
//
// States of the result are numbered breadth-first from the initial state,
// following symbols in the order of the symbol set. States unreachable from
// the initial state are dropped.
func Minimize(dfa *Automaton) *Automaton {
	symbols := dfa.Symbols()
	n := dfa.Size()
	block := make([]int, n)
	var blocks int
	{ // initial partition: accepting vs. non-accepting
		ids := map[bool]int{}
		for s := 0; s < n; s++ {
			f := dfa.IsFinal(State(s))
			id, ok := ids[f]
			if !ok {
				id = len(ids)
				ids[f] = id
			}
			block[s] = id
		}
		blocks = len(ids)
	}
	for {
		ids := make(map[string]int, blocks)
		refined := make([]int, n)
		for s := 0; s < n; s++ {
			sig := signature(dfa, State(s), symbols, block)
			id, ok := ids[sig]
			if !ok {
				id = len(ids)
				ids[sig] = id
			}
			refined[s] = id
		}
		block = refined
		if len(ids) == blocks {
			break
		}
		blocks = len(ids)
	}
	T().Debugf("minimization: %d states -> %d blocks", n, blocks)
	return quotient(dfa, symbols, block, blocks)
}

// signature identifies the block of s together with the blocks of all
// its successors. A successor of -1 denotes the trap state.
func signature(dfa *Automaton, s State, symbols []Symbol, block []int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(block[s]))
	for _, sym := range symbols {
		sb.WriteByte('|')
		if t, ok := dfa.Next(s, sym); ok {
			sb.WriteString(strconv.Itoa(block[t]))
		} else {
			sb.WriteString("-1")
		}
	}
	return sb.String()
}

// quotient builds the automaton of blocks, numbering blocks breadth-first.
func quotient(dfa *Automaton, symbols []Symbol, block []int, blocks int) *Automaton {
	rep := make([]State, blocks) // representative state per block
	for i := range rep {
		rep[i] = -1
	}
	for s := len(block) - 1; s >= 0; s-- {
		rep[block[s]] = State(s)
	}
	b := NewBuilder()
	for _, sym := range symbols {
		b.AddSymbol(sym)
	}
	number := map[int]State{block[dfa.Initial()]: 0}
	queue := []int{block[dfa.Initial()]}
	for len(queue) > 0 {
		blk := queue[0]
		queue = queue[1:]
		origin := number[blk]
		if dfa.IsFinal(rep[blk]) {
			b.MarkFinal(origin)
		}
		for _, sym := range symbols {
			t, ok := dfa.Next(rep[blk], sym)
			if !ok {
				continue
			}
			target, seen := number[block[t]]
			if !seen {
				target = b.NewState()
				number[block[t]] = target
				queue = append(queue, block[t])
			}
			b.AddEdge(origin, sym, target)
		}
	}
	return b.Automaton()
}
