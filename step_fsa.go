package machina

// stepFSA implements the FSA step: the single tape is read-only
// input, the head only ever advances right on a consuming rule, and
// ε-rules move state without consuming input or advancing the head.
// Acceptance is decided by Search when the input is exhausted at an accept
// state, not here (a stuck non-distinguished state simply dies).
func stepFSA(d *Descriptor, c Configuration) ([]Child, Terminal) {
	in := c.Tapes[0].Read()

	matches := d.Table.LookupFSA(c.State, in, d.Classes, d.InputAlphabet)
	if len(matches) == 0 {
		return nil, terminalFor(d, c.State)
	}

	children := make([]Child, 0, len(matches))
	for _, m := range matches {
		child := c.Snapshot()
		child.State = m.Rule.To
		child.Depth = c.Depth + 1
		if !m.Rule.IsEpsilon() {
			child.Tapes[0].Move(Right)
		}
		rule := m.Rule
		children = append(children, Child{Config: child, Rule: &rule})
	}
	return children, NoTerminal
}

// AtEndOfInput reports whether the FSA/PDA configuration's input head reads
// the Descriptor's blank, which for an input word without blanks means it
// has advanced past the word; Search uses it to decide acceptance.
func AtEndOfInput(d *Descriptor, c Configuration) bool {
	t := c.Tapes[0]
	return t.Read() == d.Blank
}
