package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepFSAConsumingRuleAdvancesHead(t *testing.T) {
	table := NewTable()
	table.Add(Rule{From: "q0", To: "q1", Read: []string{"a"}}, nil)
	d := &Descriptor{
		Kind: FSA, Initial: "q0", Blank: Blank, TapeCount: 1,
		States:        map[StateLabel]struct{}{"q0": {}, "q1": {}},
		InputAlphabet: NewAlphabet("a"), TapeAlphabet: NewAlphabet("a"),
		Table: table,
	}
	c := d.InitialConfiguration([]Symbol{"a", "a"})
	children, term := stepFSA(d, c)
	require.Equal(t, NoTerminal, term)
	require.Len(t, children, 1)
	assert.Equal(t, StateLabel("q1"), children[0].Config.State)
	assert.Equal(t, Symbol("a"), children[0].Config.Tapes[0].Read())
}

func TestStepFSAEpsilonRuleDoesNotAdvanceHead(t *testing.T) {
	table := NewTable()
	table.Add(Rule{From: "q0", To: "q1", Read: []string{string(Epsilon)}}, nil)
	d := &Descriptor{
		Kind: FSA, Initial: "q0", Blank: Blank, TapeCount: 1,
		States:        map[StateLabel]struct{}{"q0": {}, "q1": {}},
		InputAlphabet: NewAlphabet("a"), TapeAlphabet: NewAlphabet("a"),
		Table: table,
	}
	c := d.InitialConfiguration([]Symbol{"a"})
	children, _ := stepFSA(d, c)
	require.Len(t, children, 1)
	assert.Equal(t, Symbol("a"), children[0].Config.Tapes[0].Read())
}

func TestStepFSANoMatchAtAcceptIsTerminal(t *testing.T) {
	table := NewTable()
	d := &Descriptor{
		Kind: FSA, Initial: "q0", Accept: "q0", Blank: Blank, TapeCount: 1,
		States:        map[StateLabel]struct{}{"q0": {}},
		InputAlphabet: NewAlphabet("a"), TapeAlphabet: NewAlphabet("a"),
		Table: table,
	}
	c := d.InitialConfiguration(nil)
	children, term := stepFSA(d, c)
	assert.Nil(t, children)
	assert.Equal(t, TermAccept, term)
}

func TestAtEndOfInput(t *testing.T) {
	d := &Descriptor{Blank: Blank}
	c := Configuration{Tapes: []Tape{NewTape(Blank, nil)}}
	assert.True(t, AtEndOfInput(d, c))

	c = Configuration{Tapes: []Tape{NewTape(Blank, []Symbol{"a"})}}
	assert.False(t, AtEndOfInput(d, c))
}
