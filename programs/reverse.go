package programs

import "github.com/corwin-ash/machina"

// Reverse builds a 2-tape TM Descriptor over {a,b} that copies tape 1's
// input onto tape 2 in reverse order, then halts. Tape 1 is scanned to the
// first blank, then walked back left while each symbol is written onto
// tape 2 (which only ever moves right), so tape 2 ends up holding the
// input read backwards.
func Reverse() *machina.Descriptor {
	const (
		scanRight machina.StateLabel = "scan_right"
		scanBack  machina.StateLabel = "scan_back"
		halt      machina.StateLabel = "halt"
	)

	rules := []machina.Rule{
		{From: scanRight, To: scanRight, Read: []string{"a", "_"}, Write: []string{"a", "_"}, Dir: []machina.Direction{machina.Right, machina.Stay}},
		{From: scanRight, To: scanRight, Read: []string{"b", "_"}, Write: []string{"b", "_"}, Dir: []machina.Direction{machina.Right, machina.Stay}},
		{From: scanRight, To: scanBack, Read: []string{"_", "_"}, Write: []string{"_", "_"}, Dir: []machina.Direction{machina.Left, machina.Stay}},

		{From: scanBack, To: scanBack, Read: []string{"a", "_"}, Write: []string{"a", "a"}, Dir: []machina.Direction{machina.Left, machina.Right}},
		{From: scanBack, To: scanBack, Read: []string{"b", "_"}, Write: []string{"b", "b"}, Dir: []machina.Direction{machina.Left, machina.Right}},
		{From: scanBack, To: halt, Read: []string{"_", "_"}, Write: []string{"_", "_"}, Dir: []machina.Direction{machina.Stay, machina.Stay}},
	}

	alphabet := machina.NewAlphabet("a", "b")
	return &machina.Descriptor{
		Kind:          machina.TM,
		States:        states(rules, halt),
		Initial:       scanRight,
		Halt:          halt,
		InputAlphabet: alphabet,
		TapeAlphabet:  alphabet,
		Blank:         machina.Blank,
		TapeCount:     2,
		Table:         newTable(rules, nil),
		SourceName:    "programs.Reverse",
	}
}
