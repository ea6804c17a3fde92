// Package programs builds ready-to-run Descriptors for each model kind:
// small, hand-written examples for the straightforward cases, and a
// fragment-composition helper for the case (the lambda reducer) whose
// transition table is built out of reusable, parameterized pieces rather
// than written out by hand.
package programs

import (
	"fmt"

	"github.com/corwin-ash/machina"
)

// Fragment is a reusable block of transition rules written against local
// state names, in the style of Turing's own "m-functions": f(C, B, a)
// finds the leftmost a and goes to C (or B if there is none), and is
// written once, then reused wherever that behaviour is needed with
// different continuation states bound in. A Fragment here plays the same
// role, minus Turing's bracket-substitution notation: local names are
// renamed by Composer.Use instead of textually substituted.
type Fragment struct {
	Entry machina.StateLabel
	Rules []machina.Rule
}

// instance renames every local state name in f into "prefix/name", except
// names present in bindings, which resolve to the caller-supplied shared
// state instead — the mechanism that lets a fragment's "return" names
// (conventionally C, B, A, E in Turing's notation) be wired to whatever
// state should run next.
func (f Fragment) instance(prefix string, bindings map[machina.StateLabel]machina.StateLabel) (machina.StateLabel, []machina.Rule) {
	rename := func(s machina.StateLabel) machina.StateLabel {
		if bound, ok := bindings[s]; ok {
			return bound
		}
		return machina.StateLabel(prefix + "/" + string(s))
	}
	out := make([]machina.Rule, len(f.Rules))
	for i, r := range f.Rules {
		nr := r
		nr.From = rename(r.From)
		nr.To = rename(r.To)
		out[i] = nr
	}
	return rename(f.Entry), out
}

// Composer accumulates fragment instances into one flat rule set. Each
// call to Use gets a fresh namespace, so the same Fragment can be reused
// at many call sites (e.g. "find the next marked symbol" used once per
// redex) without its local state names colliding — the property
// standard.go's renaming-on-concatenation was hand-rolling per machine.
type Composer struct {
	count int
	rules []machina.Rule
}

// NewComposer returns an empty Composer.
func NewComposer() *Composer { return &Composer{} }

// Use instantiates fragment under a fresh namespace, binding any of its
// local names that appear as keys of bindings to the given shared states,
// and returns the instance's renamed entry point.
func (c *Composer) Use(fragment Fragment, bindings map[machina.StateLabel]machina.StateLabel) machina.StateLabel {
	c.count++
	prefix := fmt.Sprintf("g%d", c.count)
	entry, rules := fragment.instance(prefix, bindings)
	c.rules = append(c.rules, rules...)
	return entry
}

// Rules returns every rule instantiated so far.
func (c *Composer) Rules() []machina.Rule { return c.rules }

// states collects the From/To of every rule plus any extra distinguished
// labels, for populating a Descriptor's States set.
func states(rules []machina.Rule, extra ...machina.StateLabel) map[machina.StateLabel]struct{} {
	out := make(map[machina.StateLabel]struct{}, len(rules)*2+len(extra))
	for _, r := range rules {
		out[r.From] = struct{}{}
		out[r.To] = struct{}{}
	}
	for _, s := range extra {
		out[s] = struct{}{}
	}
	return out
}

func newTable(rules []machina.Rule, classes machina.ClassSet) *machina.Table {
	t := machina.NewTable()
	for _, r := range rules {
		t.Add(r, classes)
	}
	return t
}

// assembleRAM lays out a sequence of (opcode, operand) instruction pairs
// into a RAM program image, one instruction per two consecutive cells,
// starting at address 0 — the native two-cell encoding step_ram.go's fetch
// loop expects.
func assembleRAM(instrs ...[2]uint64) map[uint64]machina.Word {
	mem := make(map[uint64]machina.Word, len(instrs)*2)
	for i, in := range instrs {
		addr := uint64(i * 2)
		mem[addr] = machina.WordFromUint64(in[0], 0)
		mem[addr+1] = machina.WordFromUint64(in[1], 0)
	}
	return mem
}
