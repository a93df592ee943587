package eval

import (
	"github.com/domino14/remolino/bitboard"
)

// StabilityProxy estimates the net count of discs neither side can lose:
// popcount of stable black discs minus popcount of stable white discs.
// A disc is considered stable if it is a corner, or connects to an
// already-stable disc of its color along any of the eight rays; the set is
// grown to a fixed point.
func StabilityProxy(black, white bitboard.Mask) int16 {
	stableBlack := floodStable(black)
	stableWhite := floodStable(white)
	return int16(stableBlack.PopCount() - stableWhite.PopCount())
}

func floodStable(pieces bitboard.Mask) bitboard.Mask {
	stable := pieces & bitboard.Corners
	for {
		grown := stable | (pieces & bitboard.Neighbors(stable))
		if grown == stable {
			return stable
		}
		stable = grown
	}
}
