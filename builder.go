package wirth

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/wirth/automata"
	"github.com/npillmayer/wirth/cursor"
	"golang.org/x/text/unicode/norm"
)

// builder is the context of a single scan of a rule. It walks the rule text
// once, by recursive descent into groups, and emits the transitions of an NFA
// on the fly.
//
// Two stacks are kept in lockstep: the group stack checks that groups are
// balanced, the state stack tracks which state the next token has to start from.
type builder struct {
	conf   *config
	cursor *cursor.Cursor
	fa     *automata.Builder
	groups groupStack
	states stateStack
	accept automata.State  // current accept state at top level
	trace  strings.Builder // input annotated with state numbers
}

func newBuilder(text string, conf *config) *builder {
	b := &builder{
		conf:   conf,
		cursor: cursor.New(text),
		fa:     automata.NewBuilder(),
		groups: newGroupStack(),
	}
	b.states = newStateStack(0)
	b.trace.WriteString("<0>")
	return b
}

// build scans the complete rule. On success it returns the NFA and the trace.
// On failure nothing of the partially built automaton is returned.
func (b *builder) build() (*automata.Automaton, string, error) {
	if err := b.scan(0); err != nil {
		return nil, "", err
	}
	if err := b.checkTrailer(); err != nil {
		return nil, "", err
	}
	b.fa.MarkFinal(b.accept)
	return b.fa.Automaton(), b.trace.String(), nil
}

// scan reads tokens at one nesting level. entry is the state every
// alternative at this level starts from. scan returns after the closing
// delimiter of the current group or, at top level, after the rule terminator.
func (b *builder) scan(entry automata.State) error {
	for {
		r := b.cursor.Read()
		switch {
		case r == cursor.EOF:
			if !b.groups.empty() {
				return b.errorf(ErrUnbalancedGroup, "end of rule with open groups %q", b.groups.open())
			}
			return b.errorf(ErrMissingTerminator, "")
		case unicode.IsSpace(r):
			b.trace.WriteRune(r)
		case r == '(' || r == '[' || r == '{':
			if err := b.openGroup(r); err != nil {
				return err
			}
		case r == ')' || r == ']' || r == '}':
			return b.closeGroup(r)
		case r == '"':
			if err := b.terminal(); err != nil {
				return err
			}
		case isLetter(r):
			b.nonterminal(r)
		case r == '|':
			b.alternative(entry)
		case r == '.':
			if !b.groups.empty() {
				return b.errorf(ErrUnbalancedGroup, "rule terminated with open groups %q", b.groups.open())
			}
			b.trace.WriteRune(r)
			return nil
		default:
			return b.errorf(ErrInvalidToken, "unexpected character %q", r)
		}
	}
}

// openGroup starts a group. The state the group is entered from is replaced on
// the state stack by the group's exit state and the body's starting state.
func (b *builder) openGroup(opener rune) error {
	if b.groups.depth() >= b.conf.maxNesting {
		return b.errorf(ErrNestingTooDeep, "limit is %d", b.conf.maxNesting)
	}
	origin := b.states.pop()
	exit := b.fa.NewState()
	entry := origin
	switch opener {
	case '(':
		b.groups.push(')')
	case '[':
		b.groups.push(']')
		b.fa.AddEpsilon(origin, exit) // skip the option
	case '{':
		b.groups.push('}')
		b.fa.AddEpsilon(origin, exit) // zero repetitions
		entry = exit                  // body starts and ends at the exit
	}
	b.states.push(exit)
	b.states.push(entry)
	b.traceState(string(opener), exit)
	T().Debugf("group %c entered from %d, exit is %d", opener, origin, exit)
	return b.scan(entry)
}

// closeGroup ends the innermost group. The current origin is joined into the
// group's exit state, which becomes the origin for the following tokens.
func (b *builder) closeGroup(closer rune) error {
	expected, ok := b.groups.pop()
	if !ok {
		return b.errorf(ErrUnbalancedGroup, "%q without open group", closer)
	}
	if expected != closer {
		return b.errorf(ErrUnbalancedGroup, "found %q, expected %q", closer, expected)
	}
	last := b.states.pop()
	exit := b.states.peek()
	b.fa.AddEpsilon(last, exit)
	b.accept = exit
	b.traceState(string(closer), exit)
	T().Debugf("group closed with %c at %d", closer, exit)
	return nil
}

// terminal reads a quoted terminal. A quote immediately followed by another
// quote is part of the terminal's content.
func (b *builder) terminal() error {
	start := b.cursor.Pos() - 1
	var lit strings.Builder
	for {
		r := b.cursor.Read()
		if r == cursor.EOF {
			return &SyntaxError{Kind: ErrUnterminatedTerminal, Pos: start}
		}
		if r == '"' {
			next := b.cursor.Read()
			if next == '"' {
				lit.WriteRune('"')
				continue
			}
			if next != cursor.EOF {
				b.cursor.Undo()
			}
			break
		}
		lit.WriteRune(r)
	}
	if lit.Len() == 0 {
		return &SyntaxError{Kind: ErrEmptyTerminal, Pos: start}
	}
	content := lit.String()
	if b.conf.hasMode(optionNormalize) {
		content = norm.NFC.String(content)
	}
	b.token(automata.Symbol(content), strconv.Quote(content))
	return nil
}

// nonterminal reads a maximal run of letters, starting with first.
func (b *builder) nonterminal(first rune) {
	var name strings.Builder
	name.WriteRune(first)
	for {
		r := b.cursor.Read()
		if !isLetter(r) {
			if r != cursor.EOF {
				b.cursor.Undo()
			}
			break
		}
		name.WriteRune(r)
	}
	b.token(automata.Symbol(name.String()), name.String())
}

// token emits a transition for sym from the current origin to a fresh state,
// which becomes the new origin.
func (b *builder) token(sym automata.Symbol, text string) {
	origin := b.states.pop()
	target := b.fa.NewState()
	b.fa.AddEdge(origin, sym, target)
	b.states.push(target)
	if b.groups.empty() {
		b.accept = target
	}
	b.traceState(text, target)
	T().Debugf("(%d, %s) -> %d", origin, sym, target)
}

// alternative starts a new alternative from entry. At top level the preceding
// alternative may end the rule; within a group it ends in the group's exit.
func (b *builder) alternative(entry automata.State) {
	abandoned := b.states.pop()
	if b.groups.empty() {
		b.fa.MarkFinal(b.accept)
		b.accept = entry // an empty alternative accepts at entry
	} else {
		exit := b.states.peek()
		b.fa.AddEpsilon(abandoned, exit)
	}
	b.states.push(entry)
	b.trace.WriteRune('|')
}

// checkTrailer makes sure nothing but whitespace follows the rule terminator.
func (b *builder) checkTrailer() error {
	for r := b.cursor.Read(); r != cursor.EOF; r = b.cursor.Read() {
		if !unicode.IsSpace(r) {
			return b.errorf(ErrInvalidToken, "%q after end of rule", r)
		}
	}
	return nil
}

func (b *builder) traceState(text string, s automata.State) {
	b.trace.WriteString(text)
	b.trace.WriteByte('<')
	b.trace.WriteString(strconv.Itoa(int(s)))
	b.trace.WriteByte('>')
}

// errorf creates a syntax error for the rune just read.
func (b *builder) errorf(kind error, format string, args ...interface{}) error {
	pos := b.cursor.Pos() - 1
	if pos < 0 {
		pos = 0
	}
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &SyntaxError{Kind: kind, Pos: pos, Detail: detail}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
