package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corwin-ash/machina"
)

func syms(s string) []machina.Symbol {
	out := make([]machina.Symbol, len(s))
	for i, r := range s {
		out[i] = machina.Symbol(r)
	}
	return out
}

var defaultBounds = machina.Bounds{MaxDepth: 10000, MaxVisited: 100000}

func TestMatchesBScenario(t *testing.T) {
	d := MatchesB()
	require.NoError(t, d.Validate())

	cases := []struct {
		input   string
		verdict machina.Verdict
	}{
		{"aabb", machina.Accepted},
		{"aab", machina.Rejected},
		{"", machina.Accepted},
	}
	for _, c := range cases {
		result := machina.Search(d, syms(c.input), defaultBounds)
		assert.Equalf(t, c.verdict, result.Verdict, "input %q", c.input)
	}
}

func TestReverseScenario(t *testing.T) {
	d := Reverse()
	require.NoError(t, d.Validate())

	cases := []struct{ input, want string }{
		{"abba", "abba"},
		{"ab", "ba"},
		{"", ""},
	}
	for _, c := range cases {
		result := machina.Search(d, syms(c.input), defaultBounds)
		require.Equalf(t, machina.Halted, result.Verdict, "input %q", c.input)
		assert.Equalf(t, c.want, symStr(result.Output), "input %q", c.input)
	}
}

func TestLambdaReducerScenario(t *testing.T) {
	d := LambdaReducer()
	require.NoError(t, d.Validate())

	result := machina.Search(d, syms("(\\x.x)a"), defaultBounds)
	require.Equal(t, machina.Halted, result.Verdict)
}

func TestEchoRAMScenario(t *testing.T) {
	d := Echo(1)
	require.NoError(t, d.Validate())

	// ParseRAMWord reads input symbols as decimal literals; 5 decimal is
	// 101 binary, giving the same "101" round-trip without conflating
	// decimal and binary literal syntax.
	result := machina.Search(d, []machina.Symbol{"5"}, defaultBounds)
	require.Equal(t, machina.Halted, result.Verdict)
	require.Len(t, result.RAMOutput, 1)
	assert.Equal(t, "101", result.RAMOutput[0].String())
}

func TestContainsABScenario(t *testing.T) {
	d := ContainsAB()
	require.NoError(t, d.Validate())

	accepted := machina.Search(d, syms("caabc"), defaultBounds)
	assert.Equal(t, machina.Accepted, accepted.Verdict)

	rejected := machina.Search(d, syms("ba"), defaultBounds)
	assert.Equal(t, machina.Rejected, rejected.Verdict)
}

func TestBalancedParensScenario(t *testing.T) {
	d := BalancedParens()
	require.NoError(t, d.Validate())

	accepted := machina.Search(d, syms("(())"), defaultBounds)
	assert.Equal(t, machina.Accepted, accepted.Verdict)

	rejected := machina.Search(d, syms("(()"), defaultBounds)
	assert.Equal(t, machina.Rejected, rejected.Verdict)
}

func symStr(syms []machina.Symbol) string {
	out := make([]byte, 0, len(syms))
	for _, s := range syms {
		out = append(out, []byte(string(s))...)
	}
	return string(out)
}
