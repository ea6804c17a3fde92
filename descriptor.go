package machina

import "fmt"

// Descriptor is the immutable, shared-read-only bundle the engine steps
// against: kind, alphabets, state set, distinguished labels, tape count,
// blank symbol, and the transition table. Built once (by loader or by a
// programs.* generator) and validated before any Search runs against it.
type Descriptor struct {
	Kind Kind

	States  map[StateLabel]struct{}
	Initial StateLabel
	Accept  StateLabel // "" if the kind has no accept role
	Reject  StateLabel // "" if the kind has no reject role
	Halt    StateLabel // "" unless TM/RAM

	InputAlphabet Alphabet
	TapeAlphabet  Alphabet // == InputAlphabet for FSA
	Blank         Symbol

	TapeCount int // TM/PDA/RAM tape/stack count; 1 for FSA's read head

	Classes ClassSet

	Table *Table

	// Program is the RAM model's initial memory image: the (opcode, operand)
	// cell pairs InitialRAMConfiguration loads before execution starts.
	// Unused by TM/FSA/PDA.
	Program map[uint64]Word

	// PDAAcceptEmpty selects empty-stack acceptance instead of the default
	// final-state acceptance, per Open Question 2 (DESIGN.md).
	PDAAcceptEmpty bool

	// SourceName is used only for error messages (e.g. a file path), and is
	// never interpreted by the engine.
	SourceName string
}

// Validate performs the fatal consistency checks: every state referenced by
// a rule must be declared, every TM/RAM read/write token and every FSA/PDA
// input token must be in the declared alphabet (or be Epsilon/a declared
// class/blank), and every TM rule's read/write/dir tuples must match
// Descriptor.TapeCount. PDA stack-top and push tokens are not checked.
func (d *Descriptor) Validate() error {
	if d.Table == nil {
		return &ValidationError{Reason: "descriptor has a nil transition table"}
	}
	if _, ok := d.States[d.Initial]; !ok {
		return &ValidationError{Reason: fmt.Sprintf("initial state %q is not declared", d.Initial)}
	}
	checkRole := func(role string, label StateLabel) error {
		if label == "" {
			return nil
		}
		if _, ok := d.States[label]; !ok {
			return &ValidationError{Reason: fmt.Sprintf("%s state %q is not declared", role, label)}
		}
		return nil
	}
	if err := checkRole("accept", d.Accept); err != nil {
		return err
	}
	if err := checkRole("reject", d.Reject); err != nil {
		return err
	}
	if err := checkRole("halt", d.Halt); err != nil {
		return err
	}

	for _, r := range d.Table.All() {
		if _, ok := d.States[r.From]; !ok {
			return &ValidationError{Reason: fmt.Sprintf("rule references undeclared from-state %q", r.From)}
		}
		if _, ok := d.States[r.To]; !ok {
			return &ValidationError{Reason: fmt.Sprintf("rule references undeclared to-state %q", r.To)}
		}
		if err := d.validateRuleShape(r); err != nil {
			return err
		}
	}
	return nil
}

func (d *Descriptor) validateRuleShape(r Rule) error {
	switch d.Kind {
	case TM, RAM:
		if len(r.Read) != d.TapeCount || len(r.Write) != d.TapeCount || len(r.Dir) != d.TapeCount {
			return &ValidationError{Reason: fmt.Sprintf(
				"rule %s->%s has tape-count mismatch: want %d, got read=%d write=%d dir=%d",
				r.From, r.To, d.TapeCount, len(r.Read), len(r.Write), len(r.Dir))}
		}
		for i, tok := range r.Read {
			if err := d.checkSymbolToken(tok); err != nil {
				return fmt.Errorf("rule %s->%s tape %d: %w", r.From, r.To, i, err)
			}
		}
		for i, tok := range r.Write {
			if err := d.checkSymbolToken(tok); err != nil {
				return fmt.Errorf("rule %s->%s tape %d write: %w", r.From, r.To, i, err)
			}
		}
	case FSA:
		if len(r.Read) != 1 {
			return &ValidationError{Reason: fmt.Sprintf("FSA rule %s->%s must read exactly one symbol", r.From, r.To)}
		}
		if !r.IsEpsilon() {
			if err := d.checkSymbolToken(r.Read[0]); err != nil {
				return fmt.Errorf("rule %s->%s: %w", r.From, r.To, err)
			}
		}
	case PDA:
		if len(r.Read) != 1 {
			return &ValidationError{Reason: fmt.Sprintf("PDA rule %s->%s must read exactly one input symbol", r.From, r.To)}
		}
		if !r.IsEpsilon() {
			if err := d.checkSymbolToken(r.Read[0]); err != nil {
				return fmt.Errorf("rule %s->%s: %w", r.From, r.To, err)
			}
		}
	}
	return nil
}

func (d *Descriptor) checkSymbolToken(tok string) error {
	if tok == string(Epsilon) {
		return nil
	}
	if d.Classes.IsWildcard(tok) {
		return nil
	}
	if len(tok) > 0 && tok[0] == '!' {
		tok = tok[1:]
	}
	if Symbol(tok) == d.Blank {
		return nil
	}
	if !d.TapeAlphabet.Contains(Symbol(tok)) && !d.InputAlphabet.Contains(Symbol(tok)) {
		return &ValidationError{Reason: fmt.Sprintf("symbol %q is outside the declared alphabet", tok)}
	}
	return nil
}

// ValidateInput checks an input word against the declared input alphabet: a
// word containing symbols outside the input alphabet is fatal at
// initialisation.
func (d *Descriptor) ValidateInput(word []Symbol) error {
	for i, s := range word {
		if !d.InputAlphabet.Contains(s) {
			return &ValidationError{Reason: fmt.Sprintf("input symbol %q at position %d is outside the input alphabet", s, i)}
		}
	}
	return nil
}

// InitialConfiguration builds the starting Configuration for word, for the
// TM, FSA, and PDA kinds. RAM configurations are built by
// InitialRAMConfiguration instead, since a RAM's input is a queue of Words
// rather than a tape word.
func (d *Descriptor) InitialConfiguration(word []Symbol) Configuration {
	c := Configuration{Kind: d.Kind, State: d.Initial}
	switch d.Kind {
	case TM:
		c.Tapes = make([]Tape, d.TapeCount)
		c.Tapes[0] = NewTape(d.Blank, word)
		for i := 1; i < d.TapeCount; i++ {
			c.Tapes[i] = NewTape(d.Blank, nil)
		}
	case FSA:
		c.Tapes = []Tape{NewTape(d.Blank, word)}
	case PDA:
		c.Tapes = []Tape{NewTape(d.Blank, word)}
		c.Stack = NewStack()
	}
	return c
}

// InitialRAMConfiguration builds the starting Configuration for a RAM
// program given its input word queue, seeding memory with d.Program.
func (d *Descriptor) InitialRAMConfiguration(input []Word) Configuration {
	mem := NewMemory(input)
	for addr, w := range d.Program {
		mem.Store(addr, w)
	}
	return Configuration{
		Kind:  RAM,
		State: d.Initial,
		Mem:   mem,
	}
}
