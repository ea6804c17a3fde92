package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeReadWriteAndMove(t *testing.T) {
	tp := NewTape(Blank, []Symbol{"a", "b", "c"})
	assert.Equal(t, Symbol("a"), tp.Read())
	tp.Move(Right)
	tp.Move(Right)
	assert.Equal(t, Symbol("c"), tp.Read())
	tp.Move(Right)
	assert.Equal(t, Blank, tp.Read())
}

func TestTapeGrowsLeftInO1Shape(t *testing.T) {
	tp := NewTape(Blank, nil)
	tp.Move(Left)
	tp.Write("x")
	assert.Equal(t, Symbol("x"), tp.Read())
	tp.Move(Right)
	assert.Equal(t, Blank, tp.Read())
	tp.Move(Left)
	assert.Equal(t, Symbol("x"), tp.Read())
}

func TestTapeBoundsTrimsTrailingBlanks(t *testing.T) {
	tp := NewTape(Blank, []Symbol{"a", "_", "b", "_", "_"})
	lo, hi := tp.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
}

func TestTapeBoundsAllBlank(t *testing.T) {
	tp := NewTape(Blank, nil)
	lo, hi := tp.Bounds()
	assert.Greater(t, lo, hi)
}

func TestTapeCanonicalKeyIgnoresTransientPadding(t *testing.T) {
	a := NewTape(Blank, []Symbol{"a"})
	b := NewTape(Blank, []Symbol{"a"})
	b.Move(Right)
	b.Write(Blank) // write-blank-at-extension is a no-op in content terms
	b.Move(Left)
	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestTapeCanonicalKeyDistinguishesHeadOutsideWrittenRegion(t *testing.T) {
	atLo := NewTape(Blank, []Symbol{"a"})   // head parked at lo (index 0)
	beforeLo := NewTape(Blank, []Symbol{"a"})
	beforeLo.Move(Left) // head at -1, strictly outside [lo, hi] = [0, 0]
	assert.NotEqual(t, atLo.CanonicalKey(), beforeLo.CanonicalKey(),
		"a head parked one square before the written region must not collapse to the boundary position")
}

func TestTapeDumpRespectsWindow(t *testing.T) {
	tp := NewTape(Blank, []Symbol{"a", "b", "c"})
	assert.Equal(t, []Symbol{"b", "c"}, tp.Dump(1, 2))
	assert.Nil(t, tp.Dump(3, 1))
}

func TestTapeSnapshotIsIndependent(t *testing.T) {
	tp := NewTape(Blank, []Symbol{"a"})
	snap := tp.Snapshot()
	tp.Write("z")
	assert.Equal(t, Symbol("a"), snap.Read())
	assert.Equal(t, Symbol("z"), tp.Read())
}
