package machina

// Terminal describes what, if anything, a configuration with no matching
// rule signals. A Configuration is "stuck" (dead branch, absorbed silently
// by Search) unless its current state carries one of these distinguished
// roles.
type Terminal int

const (
	NoTerminal Terminal = iota
	TermAccept
	TermReject
	TermHalt
)

// Child pairs a successor configuration with the Rule that produced it, so
// callers that trace execution can attribute each edge. Rule is nil for
// RAM, whose step is a deterministic fetch/decode/execute rather than
// rule-matching.
type Child struct {
	Config Configuration
	Rule   *Rule
}

// Step dispatches to the per-kind step function by d.Kind. It is a pure
// function: given the same (d, c) it always returns the same children and
// terminal signal.
func Step(d *Descriptor, c Configuration) (children []Child, term Terminal) {
	switch d.Kind {
	case TM:
		return stepTM(d, c)
	case FSA:
		return stepFSA(d, c)
	case PDA:
		return stepPDA(d, c)
	case RAM:
		return stepRAM(d, c)
	default:
		return nil, NoTerminal
	}
}

// withNoRule wraps configurations that have no associated Rule (RAM's
// deterministic step).
func withNoRule(cs ...Configuration) []Child {
	out := make([]Child, len(cs))
	for i, c := range cs {
		out[i] = Child{Config: c}
	}
	return out
}

// terminalFor reports the Terminal a stuck configuration at state
// represents, based on the Descriptor's distinguished roles.
func terminalFor(d *Descriptor, state StateLabel) Terminal {
	switch {
	case d.Accept != "" && state == d.Accept:
		return TermAccept
	case d.Reject != "" && state == d.Reject:
		return TermReject
	case d.Halt != "" && state == d.Halt:
		return TermHalt
	default:
		return NoTerminal
	}
}
