package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleMatchBindsAndChecksWildcardRepeats(t *testing.T) {
	classes := ClassSet{"x": SymbolClass{Name: "x", Members: NewAlphabet("a", "b", "c")}}
	tapeAlphabet := NewAlphabet("a", "b", "c")
	r := Rule{Read: []string{"x", "x"}}

	env, ok := r.Match([]Symbol{"a", "a"}, classes, tapeAlphabet)
	require.True(t, ok)
	assert.Equal(t, Symbol("a"), env["x"])

	_, ok = r.Match([]Symbol{"a", "b"}, classes, tapeAlphabet)
	assert.False(t, ok, "repeated wildcard name must see the same symbol both times")
}

func TestMatchTokenNegation(t *testing.T) {
	env := map[string]Symbol{}
	assert.True(t, matchToken("!a", "b", nil, nil, env))
	assert.False(t, matchToken("!a", "a", nil, nil, env))
}

func TestResolveWriteCopiesBoundSymbol(t *testing.T) {
	env := map[string]Symbol{"x": "q"}
	assert.Equal(t, Symbol("q"), resolveWrite("x", env))
	assert.Equal(t, Symbol("lit"), resolveWrite("lit", env))
}

func TestTableLiteralAndWildcardLookup(t *testing.T) {
	classes := ClassSet{"any": SymbolClass{Name: "any", Members: NewAlphabet("a", "b")}}
	table := NewTable()
	literal := Rule{From: "q0", To: "q1", Read: []string{"a"}, Write: []string{"a"}, Dir: []Direction{Right}}
	wildcard := Rule{From: "q0", To: "q2", Read: []string{"any"}, Write: []string{"any"}, Dir: []Direction{Right}}
	table.Add(literal, classes)
	table.Add(wildcard, classes)

	matches := table.LookupTM("q0", []Symbol{"a"}, classes, NewAlphabet("a", "b"))
	assert.Len(t, matches, 2)
}

func TestTableEpsilonRulesAlwaysReturnedForFSA(t *testing.T) {
	table := NewTable()
	eps := Rule{From: "q0", To: "q1", Read: []string{string(Epsilon)}}
	lit := Rule{From: "q0", To: "q2", Read: []string{"a"}}
	table.Add(eps, nil)
	table.Add(lit, nil)

	matches := table.LookupFSA("q0", "a", nil, NewAlphabet("a"))
	assert.Len(t, matches, 2)

	matches = table.LookupFSA("q0", "b", nil, NewAlphabet("a", "b"))
	assert.Len(t, matches, 1) // only the epsilon rule, "a" doesn't match "b"
}

func TestTableRulesAndAll(t *testing.T) {
	table := NewTable()
	r1 := Rule{From: "q0", To: "q1", Read: []string{"a"}}
	r2 := Rule{From: "q1", To: "q2", Read: []string{"b"}}
	table.Add(r1, nil)
	table.Add(r2, nil)

	assert.Len(t, table.Rules("q0"), 1)
	assert.Len(t, table.All(), 2)
}
