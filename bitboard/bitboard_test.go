package bitboard

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestShiftNoFileWrap(t *testing.T) {
	is := is.New(t)
	// Shifting the H file east must drop every bit, not wrap into file A.
	is.Equal(Shift(FileH, East), Mask(0))
	is.Equal(Shift(FileH, NorthEast), Mask(0))
	is.Equal(Shift(FileH, SouthEast), Mask(0))
	is.Equal(Shift(FileA, West), Mask(0))
	is.Equal(Shift(FileA, NorthWest), Mask(0))
	is.Equal(Shift(FileA, SouthWest), Mask(0))
}

func TestShiftStaysInFileRange(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 1000; i++ {
		m := Mask(frand.Uint64n(1 << 63))
		// East-family results never land on file A; west-family never on H.
		is.Equal(Shift(m, East)&FileA, Mask(0))
		is.Equal(Shift(m, NorthEast)&FileA, Mask(0))
		is.Equal(Shift(m, SouthEast)&FileA, Mask(0))
		is.Equal(Shift(m, West)&FileH, Mask(0))
		is.Equal(Shift(m, NorthWest)&FileH, Mask(0))
		is.Equal(Shift(m, SouthWest)&FileH, Mask(0))
	}
}

func TestShiftMatchesDelta(t *testing.T) {
	is := is.New(t)
	for sq := 0; sq < 64; sq++ {
		single := Mask(1) << uint(sq)
		for d := Direction(0); d < NumDirections; d++ {
			shifted := Shift(single, d)
			if d.CanStep(sq) {
				is.Equal(shifted, Mask(1)<<uint(sq+d.Delta()))
			} else {
				is.Equal(shifted, Mask(0))
			}
		}
	}
}

func TestNorthSouthOverflow(t *testing.T) {
	is := is.New(t)
	is.Equal(Shift(Mask(1)<<63, North), Mask(0))
	is.Equal(Shift(Mask(1), South), Mask(0))
	is.Equal(Shift(Mask(1), North), Mask(1)<<8)
}

func TestBitHelpers(t *testing.T) {
	is := is.New(t)
	var m Mask
	m = m.Set(0).Set(63).Set(28)
	is.True(m.Test(0))
	is.True(m.Test(63))
	is.True(!m.Test(1))
	is.Equal(m.PopCount(), 3)
	is.Equal(m.Lsb(), 0)
	is.Equal(m.Clear(0).Lsb(), 28)
	is.Equal(Mask(0).Lsb(), NoSquare)
}

func TestRankFileCounts(t *testing.T) {
	is := is.New(t)
	m := Rank1 | FileA // overlapping at a1
	rc := m.RankCounts()
	is.Equal(rc[0], 8)
	for r := 1; r < 8; r++ {
		is.Equal(rc[r], 1)
	}
	fc := m.FileCounts()
	is.Equal(fc[0], 8)
	for f := 1; f < 8; f++ {
		is.Equal(fc[f], 1)
	}
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	// A corner has exactly 3 neighbors, a center square 8.
	is.Equal(Neighbors(Mask(1)).PopCount(), 3)
	is.Equal(Neighbors(Mask(1)<<27).PopCount(), 8)
	// Neighborhood never includes the seed's own squares for a single bit.
	is.Equal(Neighbors(Mask(1)<<27)&(Mask(1)<<27), Mask(0))
}
