package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFSA(t *testing.T) {
	src := strings.Join([]string{
		"fsm",
		"q0",
		"q1",
		"-",
		"q0 q1",
		"a",
		"q0 a q1",
	}, "\n")

	m, err := Load(strings.NewReader(src), "inline.fsm")
	require.NoError(t, err)
	assert.EqualValues(t, 1, m.Descriptor.TapeCount)
	assert.Equal(t, 1, len(m.Descriptor.Table.Rules("q0")))
}

func TestLoadPDAEmptyStackSentinel(t *testing.T) {
	src := strings.Join([]string{
		"pda",
		"q0",
		"- (empty-stack)",
		"-",
		"-",
		"_",
		"q0",
		"( )",
		"( )",
		"1",
		"q0 ( ⊥ q0 ⊥ (",
		"q0 ) ( q0",
	}, "\n")

	m, err := Load(strings.NewReader(src), "inline.pda")
	require.NoError(t, err)
	assert.True(t, m.Descriptor.PDAAcceptEmpty)
	assert.Equal(t, 2, len(m.Descriptor.Table.Rules("q0")))
}

func TestLoadTMRejectsEncoderModes(t *testing.T) {
	_, err := Load(strings.NewReader("tm_e\n"), "inline.tm_e")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder mode")
}

func TestLoadParsesSymbolClasses(t *testing.T) {
	src := strings.Join([]string{
		"tm",
		"q0",
		"h",
		"-",
		"h",
		"_",
		"q0 h",
		"a b c",
		"a b c ( )",
		"1",
		"q0 h A A S",
		"// A: All but ( and )",
	}, "\n")

	m, err := Load(strings.NewReader(src), "inline.tm")
	require.NoError(t, err)
	require.Contains(t, m.Descriptor.Classes, "A")
	cls := m.Descriptor.Classes["A"]
	assert.True(t, cls.Negated)
	assert.True(t, cls.Members.Contains("("))
}

func TestTokenizeInputSingleCharAlphabet(t *testing.T) {
	src := strings.Join([]string{
		"fsm",
		"q0",
		"q1",
		"-",
		"q0 q1",
		"a b",
		"q0 a q1",
	}, "\n")
	m, err := Load(strings.NewReader(src), "inline.fsm")
	require.NoError(t, err)

	syms := TokenizeInput(m.Descriptor, "aabb")
	assert.Equal(t, 4, len(syms))
	assert.Equal(t, "a", string(syms[0]))
}
