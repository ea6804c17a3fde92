package programs

import "github.com/corwin-ash/machina"

// BalancedParens builds a single-state PDA Descriptor over {(,)} that
// accepts by empty stack: every '(' pushes a marker on top of whatever is
// already there, every ')' pops one marker, and the input is balanced iff
// the stack is back to empty exactly when input is exhausted.
func BalancedParens() *machina.Descriptor {
	const q0 machina.StateLabel = "q0"
	const topClass = "top"

	classes := machina.ClassSet{
		topClass: machina.SymbolClass{
			Name:    topClass,
			Members: machina.NewAlphabet(machina.StackBottom, "("),
		},
	}

	rules := []machina.Rule{
		{
			From: q0, To: q0,
			Read:      []string{"("},
			StackTop:  topClass,
			StackPush: []machina.Symbol{topClass, "("},
		},
		{
			From: q0, To: q0,
			Read:      []string{")"},
			StackTop:  "(",
			StackPush: nil,
		},
	}

	alphabet := machina.NewAlphabet("(", ")")
	return &machina.Descriptor{
		Kind:           machina.PDA,
		States:         states(rules),
		Initial:        q0,
		InputAlphabet:  alphabet,
		TapeAlphabet:   alphabet,
		Blank:          machina.Blank,
		TapeCount:      1,
		Classes:        classes,
		Table:          newTable(rules, classes),
		PDAAcceptEmpty: true,
		SourceName:     "programs.BalancedParens",
	}
}
