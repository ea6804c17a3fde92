package machina

// stepPDA implements the PDA step: a transition reads
// (state, input-symbol-or-ε, stack-top) and writes (new-state,
// stack-replacement-sequence). The stack top is always consulted; when the
// stack is empty the rule's StackTop token is expected to be StackBottom,
// and the replacement sequence is pushed without removing anything (there
// is nothing to pop). StackBottom in a replacement sequence is never
// stored: it stands for the empty stack, so pushing it back leaves the
// stack beneath the rest of the sequence empty.
func stepPDA(d *Descriptor, c Configuration) ([]Child, Terminal) {
	in := c.Tapes[0].Read()
	top := c.Stack.Top()

	matches := d.Table.LookupPDA(c.State, in, top, d.Classes, d.InputAlphabet, d.TapeAlphabet)
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
		if !child.Stack.Empty() {
			child.Stack.Pop()
		}
		push := make([]Symbol, 0, len(m.Rule.StackPush))
		for _, tok := range m.Rule.StackPush {
			sym := resolveWrite(string(tok), m.Env)
			if sym == StackBottom {
				continue
			}
			push = append(push, sym)
		}
		child.Stack.PushSequence(push)
		rule := m.Rule
		children = append(children, Child{Config: child, Rule: &rule})
	}
	return children, NoTerminal
}
