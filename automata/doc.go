/*
Package automata holds finite automata over token symbols, together with the
algebra to turn a non-deterministic automaton into a minimal deterministic one.

Automata in this package recognize sequences of symbols, not characters. A
symbol is either the name of a non-terminal or the literal text of a terminal
of a grammar rule. Automata are created with a Builder and are immutable as
soon as they leave the builder.

States are plain integers. They are allocated in increasing order, starting at
0, which is always the initial state. There are never gaps in the range of
states of an automaton.

Subset construction and minimization are available through interface Algebra.
Clients may plug in their own implementation; the default is Standard.

Automata may be printed for debugging purposes with Render and RenderTagged.
To run a deterministic automaton over input, clients use a Recognizer, usually
obtained from a pool with NewPooledRecognizer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package automata

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
