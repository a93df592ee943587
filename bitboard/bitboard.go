// Package bitboard provides the 64-bit board primitives that the rest of
// the engine is built on. A Mask holds one bit per square, with a1 at bit 0
// and h8 at bit 63 (row-major; file A is every bit index ≡ 0 mod 8).
package bitboard

import "math/bits"

type Mask uint64

const (
	FileA Mask = 0x0101010101010101
	FileH Mask = 0x8080808080808080
	Rank1 Mask = 0x00000000000000FF

	NotFileA = ^FileA
	NotFileH = ^FileH

	Edges   Mask = 0xFF818181818181FF
	Corners Mask = 0x8100000000000081
	Full    Mask = 0xFFFFFFFFFFFFFFFF
)

// NoSquare is the sentinel returned by Lsb on an empty mask.
const NoSquare = 64

type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	NumDirections
)

// Per-direction square deltas in the row-major indexing, and the pre-shift
// masks that keep east/west-family shifts from wrapping across the file A/H
// seam. North/south shifts fall off the board naturally in 64 bits.
var dirDeltas = [NumDirections]int{8, -8, 1, -1, 9, 7, -7, -9}

var dirMasks = [NumDirections]Mask{
	Full, Full, NotFileH, NotFileA, NotFileH, NotFileA, NotFileH, NotFileA,
}

var dirNames = [NumDirections]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}

func (d Direction) Delta() int { return dirDeltas[d] }

func (d Direction) String() string { return dirNames[d] }

// CanStep reports whether a scalar walk may take one step from sq in
// direction d without wrapping a file edge or leaving the board.
func (d Direction) CanStep(sq int) bool {
	if Mask(1)<<uint(sq)&dirMasks[d] == 0 {
		return false
	}
	next := sq + dirDeltas[d]
	return next >= 0 && next < 64
}

// Shift moves every set bit of m one step in direction d, dropping bits
// that would wrap around a file edge or off the board.
func Shift(m Mask, d Direction) Mask {
	m &= dirMasks[d]
	delta := dirDeltas[d]
	if delta > 0 {
		return m << uint(delta)
	}
	return m >> uint(-delta)
}

// Neighbors is the union of all eight one-step shifts of m.
func Neighbors(m Mask) Mask {
	var n Mask
	for d := Direction(0); d < NumDirections; d++ {
		n |= Shift(m, d)
	}
	return n
}

func (m Mask) Test(sq int) bool { return m&(Mask(1)<<uint(sq)) != 0 }

func (m Mask) Set(sq int) Mask { return m | Mask(1)<<uint(sq) }

func (m Mask) Clear(sq int) Mask { return m &^ (Mask(1) << uint(sq)) }

func (m Mask) PopCount() int { return bits.OnesCount64(uint64(m)) }

// Lsb returns the index of the lowest set bit, or NoSquare (64) if m is 0.
func (m Mask) Lsb() int { return bits.TrailingZeros64(uint64(m)) }

// RankCounts returns the number of set bits on each of the 8 ranks.
func (m Mask) RankCounts() [8]int {
	var counts [8]int
	for r := 0; r < 8; r++ {
		counts[r] = (m & (Rank1 << uint(8*r))).PopCount()
	}
	return counts
}

// FileCounts returns the number of set bits on each of the 8 files.
func (m Mask) FileCounts() [8]int {
	var counts [8]int
	for f := 0; f < 8; f++ {
		counts[f] = (m & (FileA << uint(f))).PopCount()
	}
	return counts
}
