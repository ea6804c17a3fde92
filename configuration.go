package machina

import "strings"

// Kind is the closed set of model kinds the engine knows how to step.
// "lambda" is a thin alias resolved to Kind TM plus a fixed Descriptor (see
// programs.LambdaReducer); the step dispatcher never special-cases it.
type Kind int

const (
	TM Kind = iota
	FSA
	PDA
	RAM
)

func (k Kind) String() string {
	switch k {
	case TM:
		return "tm"
	case FSA:
		return "fsm"
	case PDA:
		return "pda"
	case RAM:
		return "ram"
	default:
		return "unknown"
	}
}

// StateLabel identifies a control location.
type StateLabel string

// Configuration is an immutable-by-convention snapshot of one machine
// state: control state, per-model stores, and the step depth at which it
// was created. Depth is metadata excluded from CanonicalKey so that
// value-equal configurations reached at different depths dedup correctly.
type Configuration struct {
	Kind  Kind
	State StateLabel
	Tapes []Tape
	Stack Stack
	Mem   Memory
	Depth int
}

// Snapshot returns a deep value copy of c.
func (c Configuration) Snapshot() Configuration {
	out := c
	out.Tapes = make([]Tape, len(c.Tapes))
	for i, t := range c.Tapes {
		out.Tapes[i] = t.Snapshot()
	}
	out.Stack = c.Stack.Snapshot()
	out.Mem = c.Mem.Snapshot()
	return out
}

// CanonicalKey builds the dedup key for c: state plus every store's
// content, trimmed, with Depth deliberately excluded. Two configurations
// with equal CanonicalKey are the same node in the configuration graph.
func (c Configuration) CanonicalKey() string {
	var b strings.Builder
	b.WriteString(c.Kind.String())
	b.WriteByte('|')
	b.WriteString(string(c.State))
	for _, t := range c.Tapes {
		b.WriteByte('|')
		b.WriteString(t.CanonicalKey())
	}
	switch c.Kind {
	case PDA:
		b.WriteByte('|')
		b.WriteString(c.Stack.CanonicalKey())
	case RAM:
		b.WriteByte('|')
		b.WriteString(c.Mem.CanonicalKey())
	}
	return b.String()
}
