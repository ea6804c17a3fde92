package programs

import "github.com/corwin-ash/machina"

// MatchesB builds a single-tape TM Descriptor over {a,b} that accepts iff
// every 'a' of its input can be paired with a distinct 'b' to its right and
// no 'b' is left unpaired, by repeatedly crossing off one unmarked 'a'
// (marked X) and pairing it with the next unmarked 'b' to its right (marked
// Y), rewinding to the start after each pairing. An 'a' with no unmarked 'b'
// after it rejects, so equal counts alone are not enough: "ba" is rejected.
// Once no unmarked 'a' remains, it rewinds once more and rejects if any
// unmarked 'b' is left over; an input with no a's and no b's accepts.
func MatchesB() *machina.Descriptor {
	const (
		findA         machina.StateLabel = "find_a"
		findB         machina.StateLabel = "find_b"
		rewindToFindA machina.StateLabel = "rewind_to_find_a"
		rewindToScanB machina.StateLabel = "rewind_to_scan_b"
		scanB         machina.StateLabel = "scan_b"
		accept        machina.StateLabel = "accept"
		reject        machina.StateLabel = "reject"
	)

	move := func(from, to machina.StateLabel, read, write string, dir machina.Direction) machina.Rule {
		return machina.Rule{From: from, To: to, Read: []string{read}, Write: []string{write}, Dir: []machina.Direction{dir}}
	}

	rules := []machina.Rule{
		// findA: scan right for an unmarked 'a' to pair off.
		move(findA, findB, "a", "X", machina.Right),
		move(findA, findA, "b", "b", machina.Right),
		move(findA, findA, "X", "X", machina.Right),
		move(findA, findA, "Y", "Y", machina.Right),
		move(findA, rewindToScanB, "_", "_", machina.Left),

		// findB: scan right from the marked 'a' for an unmarked 'b' to pair it with.
		move(findB, rewindToFindA, "b", "Y", machina.Left),
		move(findB, findB, "a", "a", machina.Right),
		move(findB, findB, "X", "X", machina.Right),
		move(findB, findB, "Y", "Y", machina.Right),
		move(findB, reject, "_", "_", machina.Stay),

		// rewindToFindA: return to the start of the tape, then resume findA.
		move(rewindToFindA, rewindToFindA, "a", "a", machina.Left),
		move(rewindToFindA, rewindToFindA, "b", "b", machina.Left),
		move(rewindToFindA, rewindToFindA, "X", "X", machina.Left),
		move(rewindToFindA, rewindToFindA, "Y", "Y", machina.Left),
		move(rewindToFindA, findA, "_", "_", machina.Right),

		// rewindToScanB: return to the start, then check for leftover unmarked b's.
		move(rewindToScanB, rewindToScanB, "a", "a", machina.Left),
		move(rewindToScanB, rewindToScanB, "b", "b", machina.Left),
		move(rewindToScanB, rewindToScanB, "X", "X", machina.Left),
		move(rewindToScanB, rewindToScanB, "Y", "Y", machina.Left),
		move(rewindToScanB, scanB, "_", "_", machina.Right),

		// scanB: any unmarked 'b' left over means more b's than a's.
		move(scanB, reject, "b", "b", machina.Stay),
		move(scanB, scanB, "a", "a", machina.Right),
		move(scanB, scanB, "X", "X", machina.Right),
		move(scanB, scanB, "Y", "Y", machina.Right),
		move(scanB, accept, "_", "_", machina.Stay),
	}

	alphabet := machina.NewAlphabet("a", "b", "X", "Y")
	return &machina.Descriptor{
		Kind:          machina.TM,
		States:        states(rules, accept, reject),
		Initial:       findA,
		Accept:        accept,
		Reject:        reject,
		InputAlphabet: machina.NewAlphabet("a", "b"),
		TapeAlphabet:  alphabet,
		Blank:         machina.Blank,
		TapeCount:     1,
		Table:         newTable(rules, nil),
		SourceName:    "programs.MatchesB",
	}
}
