package machina

// stepTM implements the multi-tape TM step: read the symbol at
// each head, find matching rules (possibly several, for non-determinism),
// and for each produce a child that writes the rule's (wildcard-resolved)
// write tuple and moves each head accordingly.
func stepTM(d *Descriptor, c Configuration) ([]Child, Terminal) {
	reads := make([]Symbol, len(c.Tapes))
	for i, t := range c.Tapes {
		reads[i] = t.Read()
	}

	matches := d.Table.LookupTM(c.State, reads, d.Classes, d.TapeAlphabet)
	if len(matches) == 0 {
		return nil, terminalFor(d, c.State)
	}

	children := make([]Child, 0, len(matches))
	for _, m := range matches {
		child := c.Snapshot()
		child.State = m.Rule.To
		child.Depth = c.Depth + 1
		for i := range child.Tapes {
			sym := resolveWrite(m.Rule.Write[i], m.Env)
			child.Tapes[i].Write(sym)
			child.Tapes[i].Move(m.Rule.Dir[i])
		}
		rule := m.Rule
		children = append(children, Child{Config: child, Rule: &rule})
	}
	return children, NoTerminal
}
