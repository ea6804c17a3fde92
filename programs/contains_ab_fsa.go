package programs

import "github.com/corwin-ash/machina"

// ContainsAB builds a non-deterministic FSA Descriptor over {a,b,c} that
// accepts iff the input contains the substring "ab". q0 non-deterministically
// either stays put or guesses that the symbol it just saw starts a match; q2
// is a sink that accepts whatever end-of-input it's read at.
func ContainsAB() *machina.Descriptor {
	const (
		q0 machina.StateLabel = "q0"
		q1 machina.StateLabel = "q1"
		q2 machina.StateLabel = "q2"
	)

	rules := []machina.Rule{
		{From: q0, To: q0, Read: []string{"a"}},
		{From: q0, To: q1, Read: []string{"a"}},
		{From: q0, To: q0, Read: []string{"b"}},
		{From: q0, To: q0, Read: []string{"c"}},
		{From: q1, To: q2, Read: []string{"b"}},
		{From: q2, To: q2, Read: []string{"a"}},
		{From: q2, To: q2, Read: []string{"b"}},
		{From: q2, To: q2, Read: []string{"c"}},
	}

	alphabet := machina.NewAlphabet("a", "b", "c")
	return &machina.Descriptor{
		Kind:          machina.FSA,
		States:        states(rules),
		Initial:       q0,
		Accept:        q2,
		InputAlphabet: alphabet,
		TapeAlphabet:  alphabet,
		Blank:         machina.Blank,
		TapeCount:     1,
		Table:         newTable(rules, nil),
		SourceName:    "programs.ContainsAB",
	}
}
