package machina

import "strings"

// Symbol is an opaque token identified by a short string. Tape squares,
// stack entries, and input words are all built from Symbols.
type Symbol string

// Distinguished symbols recognised by every model kind.
const (
	// Blank is the default "never written" symbol. A Descriptor may declare
	// a different blank; Blank is only the package-level fallback.
	Blank Symbol = "_"

	// Epsilon denotes "read nothing" in FSA/PDA transitions.
	Epsilon Symbol = "ε"

	// StackBottom is returned by Stack.Top on an empty stack.
	StackBottom Symbol = "⊥"
)

// Alphabet is a finite set of Symbols.
type Alphabet map[Symbol]struct{}

// NewAlphabet builds an Alphabet from a list of symbols.
func NewAlphabet(symbols ...Symbol) Alphabet {
	a := make(Alphabet, len(symbols))
	for _, s := range symbols {
		a[s] = struct{}{}
	}
	return a
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := a[s]
	return ok
}

// Union returns a new Alphabet containing every symbol of a and b.
func (a Alphabet) Union(b Alphabet) Alphabet {
	out := make(Alphabet, len(a)+len(b))
	for s := range a {
		out[s] = struct{}{}
	}
	for s := range b {
		out[s] = struct{}{}
	}
	return out
}

// SymbolClass is a named, possibly-negated finite set of Symbols, used to
// compress transition tables with wildcards such as the lambda-reducer's
// `A: All but ( and _`. A class with Negated set matches any tape-alphabet
// symbol NOT in Members; a class with Negated unset matches only Members.
type SymbolClass struct {
	Name    string
	Members Alphabet
	Negated bool
}

// Matches reports whether s belongs to the class, given the full tape
// alphabet the class is defined over (needed to enumerate a negated set).
func (c SymbolClass) Matches(s Symbol, tapeAlphabet Alphabet) bool {
	if c.Negated {
		if !tapeAlphabet.Contains(s) {
			return false
		}
		return !c.Members.Contains(s)
	}
	return c.Members.Contains(s)
}

// ClassSet is the collection of SymbolClasses declared by a Descriptor,
// indexed by name.
type ClassSet map[string]SymbolClass

// IsWildcard reports whether tok names a declared symbol class rather than
// a literal Symbol. Wildcard tokens are resolved at match time, never at
// parse time, per the engine's match-time wildcard resolution policy.
func (cs ClassSet) IsWildcard(tok string) bool {
	_, ok := cs[tok]
	return ok
}

// ParseNegatedSet parses a class description of the form "All but ( and _"
// into the excluded Alphabet. It accepts one or more "and"/","-separated
// symbols after "All but".
func ParseNegatedSet(desc string) (Alphabet, bool) {
	const prefix = "All but "
	if !strings.HasPrefix(desc, prefix) {
		return nil, false
	}
	rest := strings.TrimPrefix(desc, prefix)
	rest = strings.ReplaceAll(rest, ",", " and ")
	fields := strings.Split(rest, " and ")
	excl := make(Alphabet, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		excl[Symbol(f)] = struct{}{}
	}
	return excl, true
}
