/*
Package metagrammar recognizes rules written in Wirth syntax notation.

The syntax of a single rule is described by a context-free grammar, which is
handed to an Earley parser. This is an independent check of rule syntax,
separate from the hand-written automaton construction of package wirth. The
grammar is

   Rule = Expression "." | "." .
   Expression = Item | Expression Item .
   Item = Term | "|" .
   Term = name | literal | Group | Option | Repetition .
   Group = "(" [ Expression ] ")" .
   Option = "[" [ Expression ] "]" .
   Repetition = "{" [ Expression ] "}" .

Alternatives may be empty, therefore an expression is any sequence of terms
and bars. The grammar avoids epsilon-productions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package metagrammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
