package automata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// abOrAc builds an NFA for  a b | a c  with two separate a-edges.
func abOrAc() *Automaton {
	b := NewBuilder()
	s1, s2, s3, s4 := b.NewState(), b.NewState(), b.NewState(), b.NewState()
	b.AddEdge(0, "a", s1)
	b.AddEdge(s1, "b", s2)
	b.AddEdge(0, "a", s3)
	b.AddEdge(s3, "c", s4)
	b.MarkFinal(s2)
	b.MarkFinal(s4)
	return b.Automaton()
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	if b.Size() != 1 {
		t.Fatalf("fresh builder should hold the initial state only, size is %d", b.Size())
	}
	s := b.NewState()
	b.AddEdge(0, "x", s)
	b.AddEpsilon(s, 0)
	b.AddEdge(s, "x", 0)
	b.MarkFinal(s)
	b.MarkFinal(s)
	a := b.Automaton()
	if diff := cmp.Diff([]Symbol{"x"}, a.Symbols()); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]State{1}, a.Finals()); diff != "" {
		t.Errorf("finals mismatch (-want +got):\n%s", diff)
	}
	if a.HasSymbol(Epsilon) {
		t.Errorf("epsilon must not be part of the symbol set")
	}
	if a.EdgeCount() != 3 || a.IsDeterministic() {
		t.Errorf("expected 3 edges and non-determinism, have %d edges", a.EdgeCount())
	}
}

func TestBuilderRejectsUnknownState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for edge to unallocated state")
		}
	}()
	b := NewBuilder()
	b.AddEdge(0, "x", 5)
}

func TestEdgesAreCopies(t *testing.T) {
	a := abOrAc()
	edges := a.Edges(0)
	edges[0].Target = 99
	if a.Edges(0)[0].Target == 99 {
		t.Errorf("Edges() must not expose internal storage")
	}
	if a.Edges(4) != nil {
		t.Errorf("expected no edges for state 4")
	}
}

func TestSubsetConstruction(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	dfa := SubsetConstruction(abOrAc())
	if !dfa.IsDeterministic() {
		t.Fatalf("result of subset construction is not deterministic")
	}
	want := map[State][]Edge{
		0: {{"a", 1}},
		1: {{"b", 2}, {"c", 3}},
	}
	if diff := cmp.Diff(want, dfa.Transitions()); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]State{2, 3}, dfa.Finals()); diff != "" {
		t.Errorf("finals mismatch (-want +got):\n%s", diff)
	}
}

func TestEpsilonClosure(t *testing.T) {
	b := NewBuilder()
	s1, s2, s3 := b.NewState(), b.NewState(), b.NewState()
	b.AddEpsilon(0, s1)
	b.AddEpsilon(s1, s2)
	b.AddEpsilon(s2, 0) // cycle
	b.AddEdge(s2, "x", s3)
	nfa := b.Automaton()
	if diff := cmp.Diff([]State{0, 1, 2}, epsilonClosure(nfa, []State{0})); diff != "" {
		t.Errorf("closure mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]State{3}, epsilonClosure(nfa, []State{3})); diff != "" {
		t.Errorf("closure mismatch (-want +got):\n%s", diff)
	}
}

func TestMinimize(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dfa := Minimize(SubsetConstruction(abOrAc()))
	want := map[State][]Edge{
		0: {{"a", 1}},
		1: {{"b", 2}, {"c", 2}},
	}
	if diff := cmp.Diff(want, dfa.Transitions()); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
	if dfa.Size() != 3 {
		t.Errorf("expected 3 states, have %d", dfa.Size())
	}
	if diff := cmp.Diff([]Symbol{"a", "b", "c"}, dfa.Symbols()); diff != "" {
		t.Errorf("symbol set should survive minimization (-want +got):\n%s", diff)
	}
}

func TestMinimizeDropsUnreachable(t *testing.T) {
	b := NewBuilder()
	s1, s2 := b.NewState(), b.NewState()
	b.AddEdge(0, "x", s1)
	b.AddEdge(s2, "y", s1) // s2 is unreachable
	b.MarkFinal(s1)
	dfa := Minimize(b.Automaton())
	if dfa.Size() != 2 {
		t.Errorf("expected unreachable state to be dropped, size is %d", dfa.Size())
	}
}

func TestStandardAlgebraIsPure(t *testing.T) {
	nfa := abOrAc()
	before := Render(nfa)
	Standard.MinimizeDFA(Standard.NFAToDFA(nfa))
	if Render(nfa) != before {
		t.Errorf("algebra modified its argument")
	}
}

func TestRender(t *testing.T) {
	b := NewBuilder()
	s1 := b.NewState()
	b.AddEpsilon(0, s1)
	b.AddEdge(s1, "n", 0)
	b.MarkFinal(s1)
	a := b.Automaton()
	want := "initial: 0\nfinal: 1\n(0, ε) -> 1\n(1, n) -> 0\n"
	if got := Render(a); got != want {
		t.Errorf("expected\n%s\nhave\n%s", want, got)
	}
	want = "initial: 0\nfinal: 1\n(0, ε) -> 1  [initial]\n(1, n) -> 0\n"
	if got := RenderTagged(a); got != want {
		t.Errorf("expected\n%s\nhave\n%s", want, got)
	}
}

func TestRenderAcceptTag(t *testing.T) {
	a := abOrAc()
	want := "initial: 0\nfinal: 2, 4\n" +
		"(0, a) -> 1  [initial]\n(0, a) -> 3  [initial]\n" +
		"(1, b) -> 2  [accept]\n(3, c) -> 4  [accept]\n"
	if got := RenderTagged(a); got != want {
		t.Errorf("expected\n%s\nhave\n%s", want, got)
	}
}

func TestRecognizer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dfa := Minimize(SubsetConstruction(abOrAc()))
	rec := NewPooledRecognizer(dfa)
	if rec.Accepting() {
		t.Errorf("empty input should not be accepted")
	}
	if !rec.Step("a") || !rec.Step("c") {
		t.Errorf("expected a c to be matched")
	}
	if !rec.Accepting() || rec.MatchLen != 2 {
		t.Errorf("expected a c to be accepted, recognizer is %v", rec)
	}
	if rec.Step("a") || !rec.Done() || rec.Accepting() {
		t.Errorf("recognizer should abort on superfluous input")
	}
	rec.Release()
	for i := 0; i < 10; i++ { // recycle recognizers
		rec = NewPooledRecognizer(dfa)
		if rec.Done() || rec.MatchLen != 0 {
			t.Errorf("pooled recognizer not reset: %v", rec)
		}
		rec.Release()
	}
	if !Accepts(dfa, "a", "b") || Accepts(dfa, "a") || Accepts(dfa, "b") {
		t.Errorf("Accepts() disagrees with automaton")
	}
}
