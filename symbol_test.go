package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetContainsAndUnion(t *testing.T) {
	a := NewAlphabet("a", "b")
	b := NewAlphabet("b", "c")
	assert.True(t, a.Contains("a"))
	assert.False(t, a.Contains("c"))

	u := a.Union(b)
	assert.True(t, u.Contains("a"))
	assert.True(t, u.Contains("c"))
}

func TestSymbolClassMembership(t *testing.T) {
	cls := SymbolClass{Name: "vowel", Members: NewAlphabet("a", "e", "i", "o", "u")}
	tape := NewAlphabet("a", "e", "i", "o", "u", "x", "y")
	assert.True(t, cls.Matches("a", tape))
	assert.False(t, cls.Matches("x", tape))
}

func TestSymbolClassNegated(t *testing.T) {
	cls := SymbolClass{Name: "A", Members: NewAlphabet("(", "_"), Negated: true}
	tape := NewAlphabet("(", ")", "_", "a")
	assert.False(t, cls.Matches("(", tape))
	assert.True(t, cls.Matches(")", tape))
	assert.False(t, cls.Matches(")", NewAlphabet("("))) // outside tape alphabet entirely
}

func TestParseNegatedSet(t *testing.T) {
	excl, ok := ParseNegatedSet("All but ( and _")
	assert.True(t, ok)
	assert.True(t, excl.Contains("("))
	assert.True(t, excl.Contains("_"))
	assert.False(t, excl.Contains("a"))

	_, ok = ParseNegatedSet("x1 x2 a")
	assert.False(t, ok)
}

func TestClassSetIsWildcard(t *testing.T) {
	cs := ClassSet{"A": SymbolClass{Name: "A"}}
	assert.True(t, cs.IsWildcard("A"))
	assert.False(t, cs.IsWildcard("a"))
}
