// Package loader turns the line-oriented model file format into a
// machina.Descriptor plus an input word. It is deliberately thin: no
// general grammar, no incremental or streaming parse, no recovery from
// malformed input beyond reporting where it went wrong.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/corwin-ash/machina"
)

// none is the sentinel token a header line uses to mean "this role is
// absent", since the format's own "blank lines are ignored" rule makes a
// literal empty line unusable for that purpose.
const none = "-"

const emptyStackSentinel = "(empty-stack)"

type line struct {
	no   int
	text string
}

// Model is the parsed result: a Descriptor that has already passed
// Validate. The input word is not part of a model file; TokenizeInput
// builds it from a separate string.
type Model struct {
	Descriptor *machina.Descriptor
}

// LoadFile reads path and parses it into a Model.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &machina.ParseError{Reason: fmt.Sprintf("cannot open %s", path), Cause: err}
	}
	defer f.Close()
	return Load(f, path)
}

// Load parses r into a Model. name is used only for error messages.
func Load(r io.Reader, name string) (*Model, error) {
	lines, classLines, err := splitLines(r)
	if err != nil {
		return nil, &machina.ParseError{Reason: "cannot read model file", Cause: err}
	}
	if len(lines) == 0 {
		return nil, &machina.ParseError{Reason: "model file has no content"}
	}

	classes := parseClasses(classLines)

	p := &parser{lines: lines, name: name}
	kindTok := p.next()
	kind, err := parseKind(kindTok)
	if err != nil {
		return nil, err
	}

	d := &machina.Descriptor{Classes: classes, SourceName: name}
	switch kind {
	case kindFSA:
		d.Kind = machina.FSA
		if err := p.fsaHeader(d); err != nil {
			return nil, err
		}
	default:
		d.Kind = kind.engineKind()
		if err := p.tapeHeader(d, kind); err != nil {
			return nil, err
		}
	}

	if err := p.transitions(d, kind); err != nil {
		return nil, err
	}
	if err := p.err; err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Model{Descriptor: d}, nil
}

// modelKind is the file format's kind token, kept distinct from
// machina.Kind because "fsm", "lambda", "tm_e", and "ram_e" all need
// format-level handling that doesn't correspond 1:1 with the engine's
// four-way tagged variant.
type modelKind int

const (
	kindTM modelKind = iota
	kindFSA
	kindPDA
	kindRAM
	kindLambda
)

func (k modelKind) engineKind() machina.Kind {
	switch k {
	case kindFSA:
		return machina.FSA
	case kindPDA:
		return machina.PDA
	case kindRAM:
		return machina.RAM
	default:
		return machina.TM // tm and lambda both run as TM
	}
}

func parseKind(tok string) (modelKind, error) {
	switch tok {
	case "tm":
		return kindTM, nil
	case "fsm":
		return kindFSA, nil
	case "pda":
		return kindPDA, nil
	case "ram":
		return kindRAM, nil
	case "lambda":
		return kindLambda, nil
	case "tm_e", "ram_e":
		return 0, &machina.ParseError{Reason: fmt.Sprintf("encoder mode %q not implemented", tok)}
	default:
		return 0, &machina.ParseError{Reason: fmt.Sprintf("unrecognised model kind %q", tok)}
	}
}

// parser walks the content lines (comments and blank lines already
// stripped) in declared order.
type parser struct {
	lines []line
	pos   int
	name  string
	err   error
}

func (p *parser) next() string {
	if p.pos >= len(p.lines) {
		if p.err == nil {
			p.err = &machina.ParseError{Reason: "model file ended before all header lines were read"}
		}
		return ""
	}
	l := p.lines[p.pos]
	p.pos++
	return l.text
}

func (p *parser) peekLineNo() int {
	if p.pos >= len(p.lines) {
		return -1
	}
	return p.lines[p.pos].no
}

func role(tok string) machina.StateLabel {
	if tok == none {
		return ""
	}
	return machina.StateLabel(tok)
}

func alphabetOf(tok string) machina.Alphabet {
	fields := strings.Fields(tok)
	syms := make([]machina.Symbol, len(fields))
	for i, f := range fields {
		syms[i] = machina.Symbol(f)
	}
	return machina.NewAlphabet(syms...)
}

func statesOf(tok string) map[machina.StateLabel]struct{} {
	fields := strings.Fields(tok)
	out := make(map[machina.StateLabel]struct{}, len(fields))
	for _, f := range fields {
		out[machina.StateLabel(f)] = struct{}{}
	}
	return out
}

// fsaHeader consumes the abbreviated fsm header: initial, accept, reject,
// state set, input alphabet — the halt-state, blank-symbol, tape-alphabet
// and tape-count lines are omitted entirely for this kind, per the format's
// Open Question 1 resolution.
func (p *parser) fsaHeader(d *machina.Descriptor) error {
	d.Initial = machina.StateLabel(p.next())
	d.Accept = role(p.next())
	d.Reject = role(p.next())
	d.States = statesOf(p.next())
	d.InputAlphabet = alphabetOf(p.next())
	d.TapeAlphabet = d.InputAlphabet
	d.Blank = machina.Blank
	d.TapeCount = 1
	return p.err
}

// tapeHeader consumes the full ten-line header shared by tm, pda, ram,
// and lambda (which runs as tm): initial, accept, reject, halt, blank
// symbol, state set, input alphabet, tape alphabet, tape count.
func (p *parser) tapeHeader(d *machina.Descriptor, kind modelKind) error {
	d.Initial = machina.StateLabel(p.next())
	acceptTok := p.next()
	d.Reject = role(p.next())
	d.Halt = role(p.next())
	d.Blank = machina.Symbol(p.next())
	if d.Blank == "" || d.Blank == none {
		d.Blank = machina.Blank
	}
	d.States = statesOf(p.next())
	d.InputAlphabet = alphabetOf(p.next())
	d.TapeAlphabet = alphabetOf(p.next())
	tcLine := p.peekLineNo()
	tcTok := p.next()
	if p.err != nil {
		return p.err
	}

	if kind == kindPDA && strings.HasSuffix(acceptTok, emptyStackSentinel) {
		d.PDAAcceptEmpty = true
		acceptTok = strings.TrimSpace(strings.TrimSuffix(acceptTok, emptyStackSentinel))
	}
	d.Accept = role(acceptTok)

	tc, err := strconv.Atoi(tcTok)
	if err != nil {
		return &machina.ParseError{Line: tcLine, Reason: fmt.Sprintf("tape count %q is not an integer", tcTok), Cause: err}
	}
	d.TapeCount = tc
	return nil
}

func (p *parser) transitions(d *machina.Descriptor, kind modelKind) error {
	var rules []machina.Rule
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		p.pos++
		fields := strings.Fields(l.text)

		switch kind {
		case kindFSA:
			r, err := parseFSALine(l, fields)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		case kindPDA:
			r, err := parsePDALine(l, fields)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		case kindRAM:
			if err := parseRAMLine(d, l, fields); err != nil {
				return err
			}
		default: // tm, lambda
			r, err := parseTMLine(l, fields, d.TapeCount)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		}
	}
	if kind != kindRAM {
		t := machina.NewTable()
		for _, r := range rules {
			t.Add(r, d.Classes)
		}
		d.Table = t
	} else if d.Table == nil {
		d.Table = machina.NewTable()
	}
	return nil
}

// parseTMLine parses "from to (read write dir){k}" — 2 + 3k tokens.
func parseTMLine(l line, fields []string, tapeCount int) (machina.Rule, error) {
	want := 2 + 3*tapeCount
	if len(fields) != want {
		return machina.Rule{}, &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("transition line has %d tokens, want %d for %d tapes", len(fields), want, tapeCount)}
	}
	r := machina.Rule{
		From:  machina.StateLabel(fields[0]),
		To:    machina.StateLabel(fields[1]),
		Read:  make([]string, tapeCount),
		Write: make([]string, tapeCount),
		Dir:   make([]machina.Direction, tapeCount),
	}
	for i := 0; i < tapeCount; i++ {
		base := 2 + 3*i
		r.Read[i] = fields[base]
		r.Write[i] = fields[base+1]
		dirTok := fields[base+2]
		if len(dirTok) != 1 {
			return machina.Rule{}, &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("direction token %q must be a single L/R/S character", dirTok)}
		}
		r.Dir[i] = machina.Direction(dirTok[0])
	}
	return r, nil
}

// parseFSALine parses "from sym to".
func parseFSALine(l line, fields []string) (machina.Rule, error) {
	if len(fields) != 3 {
		return machina.Rule{}, &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("FSA transition line has %d tokens, want 3", len(fields))}
	}
	return machina.Rule{
		From: machina.StateLabel(fields[0]),
		Read: []string{fields[1]},
		To:   machina.StateLabel(fields[2]),
	}, nil
}

// parsePDALine parses "from in-sym stack-top to stack-push…".
func parsePDALine(l line, fields []string) (machina.Rule, error) {
	if len(fields) < 4 {
		return machina.Rule{}, &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("PDA transition line has %d tokens, want at least 4", len(fields))}
	}
	push := make([]machina.Symbol, len(fields)-4)
	for i, f := range fields[4:] {
		push[i] = machina.Symbol(f)
	}
	return machina.Rule{
		From:      machina.StateLabel(fields[0]),
		Read:      []string{fields[1]},
		StackTop:  fields[2],
		To:        machina.StateLabel(fields[3]),
		StackPush: push,
	}, nil
}

var ramMnemonics = map[string]machina.Opcode{
	"READ":  machina.OpRead,
	"WRITE": machina.OpWrite,
	"LOAD":  machina.OpLoad,
	"STORE": machina.OpStore,
	"ADD":   machina.OpAdd,
	"SUB":   machina.OpSub,
	"INIT":  machina.OpInit,
	"JUMP":  machina.OpJump,
	"CJUMP": machina.OpCJump,
	"MIR":   machina.OpMIR,
	"MIL":   machina.OpMIL,
	"HALT":  machina.OpHalt,
}

// parseRAMLine parses "addr MNEMONIC operand" into d.Program, laying out
// the native two-cell-per-instruction encoding step_ram.go's fetch loop
// expects. RAM model files describe a program image rather than a
// transition table, so they bypass the Table machinery entirely.
func parseRAMLine(d *machina.Descriptor, l line, fields []string) error {
	if len(fields) != 3 {
		return &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("RAM instruction line has %d tokens, want 3 (addr mnemonic operand)", len(fields))}
	}
	addr, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("RAM instruction address %q is not an integer", fields[0]), Cause: err}
	}
	op, ok := ramMnemonics[strings.ToUpper(fields[1])]
	if !ok {
		return &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("unrecognised RAM opcode %q", fields[1])}
	}
	operand, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return &machina.ParseError{Line: l.no, Reason: fmt.Sprintf("RAM instruction operand %q is not an integer", fields[2]), Cause: err}
	}
	if d.Program == nil {
		d.Program = make(map[uint64]machina.Word)
	}
	d.Program[addr] = machina.WordFromUint64(uint64(op), 0)
	d.Program[addr+1] = machina.WordFromUint64(operand, 0)
	return nil
}

// TokenizeInput splits a CLI input string on whitespace into Symbols, or
// treats each rune as its own Symbol when the string contains no spaces
// and the descriptor's alphabet is single-character — matching the
// shipped scenarios' "abba"/"aabb"-style compact inputs.
func TokenizeInput(d *machina.Descriptor, s string) []machina.Symbol {
	if strings.ContainsAny(s, " \t") {
		fields := strings.Fields(s)
		out := make([]machina.Symbol, len(fields))
		for i, f := range fields {
			out[i] = machina.Symbol(f)
		}
		return out
	}
	multiChar := false
	for sym := range d.InputAlphabet {
		if len(sym) > 1 {
			multiChar = true
			break
		}
	}
	if multiChar {
		return []machina.Symbol{machina.Symbol(s)}
	}
	runes := []rune(s)
	out := make([]machina.Symbol, len(runes))
	for i, r := range runes {
		out[i] = machina.Symbol(r)
	}
	return out
}

// splitLines reads r into significant content lines (every comment line
// and blank line removed) plus the raw text of every comment line, for
// parseClasses to scan separately.
func splitLines(r io.Reader) (content []line, comments []line, err error) {
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "//") {
			comments = append(comments, line{no: no, text: raw})
			continue
		}
		content = append(content, line{no: no, text: raw})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return content, comments, nil
}

// parseClasses scans comment lines for the "// Name: All but X and Y" or
// "// Name: s1 s2 …" symbol-class declaration form.
func parseClasses(comments []line) machina.ClassSet {
	classes := machina.ClassSet{}
	for _, c := range comments {
		body := strings.TrimSpace(strings.TrimPrefix(c.text, "//"))
		name, desc, ok := strings.Cut(body, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name == "" || desc == "" {
			continue
		}
		if excl, isNegated := machina.ParseNegatedSet(desc); isNegated {
			classes[name] = machina.SymbolClass{Name: name, Members: excl, Negated: true}
			continue
		}
		classes[name] = machina.SymbolClass{Name: name, Members: alphabetOf(desc)}
	}
	return classes
}
