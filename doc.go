/*
Package wirth turns grammar rules in Wirth syntax notation into finite automata.

Description

Wirth syntax notation (WSN) is an EBNF-like notation proposed by Niklaus Wirth
in 1977. A rule consists of non-terminals (bare words), terminals (quoted
literals), grouping with ( … ), optional parts with [ … ], repetition with
{ … } and alternatives separated by |. A rule ends with a period:

   Term = Factor { ( "*" | "/" ) Factor } .

Package wirth handles the right-hand side of a single rule:

   Factor { ( "*" | "/" ) Factor } .

A double quote within a terminal is written as two double quotes. Empty
terminals are not allowed. Whitespace is insignificant.

From a rule, package wirth creates a non-deterministic finite automaton (NFA)
over the symbols of the rule, i.e. the names of non-terminals and the content
of terminals. The NFA is built in a single pass over the rule text, in the
fashion of Thompson's construction. Groups are entered and left with epsilon
transitions; optional groups and repetitions add an epsilon transition to skip
the group, and repetitions loop back into the state before the group.

   rule, err := wirth.NewRule(`Factor { ( "*" | "/" ) Factor } .`)
   if err != nil {
       // rule is malformed
   }
   fmt.Println(automata.Render(rule.NFA()))

The NFA is a precursor. Clients will usually want the minimized deterministic
automaton, which is derived on first request and then cached:

   dfa := rule.DFA()
   rule.Accepts("Factor", "*", "Factor") // true

Subset construction and minimization are performed by an automata.Algebra,
which may be replaced with option WithAlgebra.

Errors

Malformed rules are rejected as a whole; there is no error recovery and no
partially built automaton. Errors are of type *SyntaxError and wrap one of
ErrUnbalancedGroup, ErrUnterminatedTerminal, ErrEmptyTerminal,
ErrInvalidToken, ErrMissingTerminator or ErrNestingTooDeep.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package wirth

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
