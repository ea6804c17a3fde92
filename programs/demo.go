package programs

import (
	"fmt"

	"github.com/corwin-ash/machina"
)

// BusyBeaverCandidate builds a single-tape, n-state, 2-symbol TM
// Descriptor in the busy-beaver competition's shape: every state prints a
// 1, moves left, and advances to the next state in sequence, with the
// last state halting. It is not the result of searching all n-state
// machines for the true busy beaver champion (that search is exponential
// in n and belongs to a offline generator, not a Descriptor constructor);
// it is one concrete candidate from that search space, useful for
// exercising a Search run that legitimately needs a generous step bound
// before it halts.
func BusyBeaverCandidate(n int) *machina.Descriptor {
	if n < 1 {
		n = 1
	}
	halt := machina.StateLabel("halt")
	states := make([]machina.StateLabel, n)
	for i := range states {
		states[i] = machina.StateLabel(fmt.Sprintf("q%d", i))
	}

	var rules []machina.Rule
	declared := map[machina.StateLabel]struct{}{halt: {}}
	for i, s := range states {
		declared[s] = struct{}{}
		next := halt
		if i < n-1 {
			next = states[i+1]
		}
		for _, read := range []string{"0", "1", "_"} {
			rules = append(rules, machina.Rule{
				From: s, To: next,
				Read: []string{read}, Write: []string{"1"},
				Dir: []machina.Direction{machina.Left},
			})
		}
	}

	alphabet := machina.NewAlphabet("0", "1")
	return &machina.Descriptor{
		Kind:          machina.TM,
		States:        declared,
		Initial:       states[0],
		Halt:          halt,
		InputAlphabet: alphabet,
		TapeAlphabet:  alphabet,
		Blank:         machina.Blank,
		TapeCount:     1,
		Table:         newTable(rules, nil),
		SourceName:    "programs.BusyBeaverCandidate",
	}
}

// DiagonalArgument builds a single-tape TM Descriptor that never halts: it
// writes a 1 and steps right, forever, regardless of what it reads. It
// stands in for the diagonal argument's conclusion — a machine can be
// built whose behaviour (running forever) no halting-decider could have
// predicted by simulating it for any bounded number of steps — as a fixed
// point for exercising Search's Diverged verdict against max_depth /
// max_visited bounds rather than against an explicit reject/halt state.
func DiagonalArgument() *machina.Descriptor {
	const loop machina.StateLabel = "loop"
	rules := []machina.Rule{
		{From: loop, To: loop, Read: []string{"0"}, Write: []string{"1"}, Dir: []machina.Direction{machina.Right}},
		{From: loop, To: loop, Read: []string{"1"}, Write: []string{"1"}, Dir: []machina.Direction{machina.Right}},
		{From: loop, To: loop, Read: []string{"_"}, Write: []string{"1"}, Dir: []machina.Direction{machina.Right}},
	}
	alphabet := machina.NewAlphabet("0", "1")
	return &machina.Descriptor{
		Kind:          machina.TM,
		States:        states(rules),
		Initial:       loop,
		InputAlphabet: alphabet,
		TapeAlphabet:  alphabet,
		Blank:         machina.Blank,
		TapeCount:     1,
		Table:         newTable(rules, nil),
		SourceName:    "programs.DiagonalArgument",
	}
}
