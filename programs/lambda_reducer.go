package programs

import "github.com/corwin-ash/machina"

// LambdaReducer builds a 2-tape TM Descriptor that beta-reduces the fixed
// redex shape "(\x.x)ARG" — the identity combinator applied to an
// argument drawn from {a,b,c} — to ARG, by reading tape 1 left to right
// and copying the argument onto tape 2 once the "(\x.x)" prefix is
// confirmed.
//
// This is deliberately a single recognized shape rather than a general
// substitution engine: general capture-avoiding substitution needs to
// compare an arbitrary bound-variable name read at one tape position
// against the same name read many steps later, which this engine's
// wildcard binding (scoped to one multi-tape read) can't express across
// separate steps without extra bookkeeping tapes. A Descriptor here
// stands for "the encoding this engine runs the reduction through", not a
// general evaluator.
func LambdaReducer() *machina.Descriptor {
	const (
		scanOpen  machina.StateLabel = "scan_open"
		scanLam   machina.StateLabel = "scan_lambda"
		scanParam machina.StateLabel = "scan_param"
		scanDot   machina.StateLabel = "scan_dot"
		scanBody  machina.StateLabel = "scan_body"
		scanClose machina.StateLabel = "scan_close"
		halt      machina.StateLabel = "halt"
	)
	const atomClass = "atom"
	const localEntry, localDone machina.StateLabel = "copy", "done"

	classes := machina.ClassSet{
		atomClass: machina.SymbolClass{Name: atomClass, Members: machina.NewAlphabet("a", "b", "c")},
	}

	stay2 := func(from, to machina.StateLabel, read string) machina.Rule {
		return machina.Rule{
			From: from, To: to,
			Read: []string{read, "_"}, Write: []string{read, "_"},
			Dir: []machina.Direction{machina.Right, machina.Stay},
		}
	}

	// copyToTape2 reads atomClass symbols from tape 1 onto tape 2 until
	// blank, then goes to whatever the caller binds localDone to — the
	// same "copy marked symbols to the end" shape abbreviated.go's
	// copyAndErase fragment generalizes, minus the erase.
	copyToTape2 := Fragment{
		Entry: localEntry,
		Rules: []machina.Rule{
			{
				From: localEntry, To: localEntry,
				Read:  []string{atomClass, "_"},
				Write: []string{atomClass, atomClass},
				Dir:   []machina.Direction{machina.Right, machina.Right},
			},
			{
				From: localEntry, To: localDone,
				Read: []string{"_", "_"}, Write: []string{"_", "_"},
				Dir: []machina.Direction{machina.Stay, machina.Stay},
			},
		},
	}

	composer := NewComposer()
	copyArg := composer.Use(copyToTape2, map[machina.StateLabel]machina.StateLabel{localDone: halt})

	rules := append([]machina.Rule{
		stay2(scanOpen, scanLam, "("),
		stay2(scanLam, scanParam, "\\"),
		stay2(scanParam, scanDot, "x"),
		stay2(scanDot, scanBody, "."),
		stay2(scanBody, scanClose, "x"),
		stay2(scanClose, copyArg, ")"),
	}, composer.Rules()...)

	tapeAlphabet := machina.NewAlphabet("(", "\\", "x", ".", ")", "a", "b", "c")
	return &machina.Descriptor{
		Kind:          machina.TM,
		States:        states(rules, halt),
		Initial:       scanOpen,
		Halt:          halt,
		InputAlphabet: tapeAlphabet,
		TapeAlphabet:  tapeAlphabet,
		Blank:         machina.Blank,
		TapeCount:     2,
		Classes:       classes,
		Table:         newTable(rules, classes),
		SourceName:    "programs.LambdaReducer",
	}
}
