package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	assert.True(t, s.Empty())
	assert.Equal(t, StackBottom, s.Top())

	s.Push("a")
	s.Push("b")
	assert.Equal(t, Symbol("b"), s.Top())

	sym, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, Symbol("b"), sym)
	assert.Equal(t, Symbol("a"), s.Top())
}

func TestStackPopEmptyReturnsBottom(t *testing.T) {
	var s Stack
	sym, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, StackBottom, sym)
}

func TestStackPushSequenceEndsWithLastOnTop(t *testing.T) {
	var s Stack
	s.PushSequence([]Symbol{"x", "y", "z"})
	assert.Equal(t, Symbol("z"), s.Top())
	sym, _ := s.Pop()
	assert.Equal(t, Symbol("z"), sym)
	sym, _ = s.Pop()
	assert.Equal(t, Symbol("y"), sym)
}

func TestStackSnapshotIsIndependent(t *testing.T) {
	var s Stack
	s.Push("a")
	snap := s.Snapshot()
	s.Push("b")
	assert.True(t, snap.Top() == "a")
	assert.True(t, s.Top() == "b")
}

func TestStackCanonicalKeyDistinguishesContent(t *testing.T) {
	var a, b Stack
	a.PushSequence([]Symbol{"x", "y"})
	b.PushSequence([]Symbol{"y", "x"})
	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
}
