package automata

import (
	"fmt"
	"strconv"
	"strings"
)

// EpsilonMarker is used to print epsilon transitions.
const EpsilonMarker = "ε"

// Render prints an automaton in a human readable form:
//
//     initial: 0
//     final: 1, 2
//     (0, n) -> 1
//     (0, ε) -> 2
//
// Transitions are listed by origin state, and for each origin in order of
// insertion.
func Render(a *Automaton) string {
	return render(a, false)
}

// RenderTagged prints an automaton like Render does, but marks transitions
// leaving the initial state with "[initial]" and transitions reaching an
// accepting state with "[accept]". If both apply, the line is tagged "[initial]".
func RenderTagged(a *Automaton) string {
	return render(a, true)
}

func render(a *Automaton, tagged bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "initial: %d\n", a.Initial())
	finals := a.Finals()
	ids := make([]string, len(finals))
	for i, f := range finals {
		ids[i] = strconv.Itoa(int(f))
	}
	fmt.Fprintf(&sb, "final: %s\n", strings.Join(ids, ", "))
	for s := 0; s < a.Size(); s++ {
		origin := State(s)
		for _, e := range a.edges[origin] {
			sym := string(e.Symbol)
			if e.Symbol.IsEpsilon() {
				sym = EpsilonMarker
			}
			fmt.Fprintf(&sb, "(%d, %s) -> %d", origin, sym, e.Target)
			if tagged {
				switch {
				case origin == a.Initial():
					sb.WriteString("  [initial]")
				case a.IsFinal(e.Target):
					sb.WriteString("  [accept]")
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
