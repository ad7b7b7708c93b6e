package wirth

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/wirth/automata"
)

// --- Group stack -----------------------------------------------------------

// groupStack holds the closing delimiters expected for the currently open
// groups. It is used for checking the balance of groups only.
type groupStack struct {
	stack *arraystack.Stack
}

func newGroupStack() groupStack {
	return groupStack{stack: arraystack.New()}
}

func (gs groupStack) push(closer rune) {
	gs.stack.Push(closer)
}

func (gs groupStack) pop() (rune, bool) {
	v, ok := gs.stack.Pop()
	if !ok {
		return 0, false
	}
	return v.(rune), true
}

func (gs groupStack) empty() bool {
	return gs.stack.Empty()
}

func (gs groupStack) depth() int {
	return gs.stack.Size()
}

// values returns the expected closers, innermost group first.
func (gs groupStack) values() []rune {
	vals := gs.stack.Values()
	closers := make([]rune, len(vals))
	for i, v := range vals {
		closers[i] = v.(rune)
	}
	return closers
}

var openerFor = map[rune]rune{')': '(', ']': '[', '}': '{'}

// open lists the markers of the groups still open, outermost first.
func (gs groupStack) open() string {
	closers := gs.values()
	var sb strings.Builder
	for i := len(closers) - 1; i >= 0; i-- {
		sb.WriteRune(openerFor[closers[i]])
	}
	return sb.String()
}

// --- State stack -----------------------------------------------------------

// stateStack holds states of the automaton under construction. Its top is the
// state the next token at the current nesting depth originates from. Beneath
// the top for every open group there is the group's exit state.
type stateStack struct {
	stack *arraystack.Stack
}

func newStateStack(initial automata.State) stateStack {
	ss := stateStack{stack: arraystack.New()}
	ss.push(initial)
	return ss
}

func (ss stateStack) push(s automata.State) {
	ss.stack.Push(s)
}

// pop panics on an empty stack. Group balance is checked before the state
// stack is popped, so an empty state stack indicates a bug.
func (ss stateStack) pop() automata.State {
	v, ok := ss.stack.Pop()
	if !ok {
		panic("wirth: state stack underflow")
	}
	return v.(automata.State)
}

func (ss stateStack) peek() automata.State {
	v, ok := ss.stack.Peek()
	if !ok {
		panic("wirth: peek at empty state stack")
	}
	return v.(automata.State)
}

// values returns the stack contents, top first.
func (ss stateStack) values() []automata.State {
	vals := ss.stack.Values()
	states := make([]automata.State, len(vals))
	for i, v := range vals {
		states[i] = v.(automata.State)
	}
	return states
}
