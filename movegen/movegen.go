// Package movegen computes legal-move masks and flip sets for Othello
// positions. All functions are pure; they take the mover's and opponent's
// occupancy masks and return masks.
//
// Legal is the ray-doubling generator used by everything in the engine.
// LegalByWalk is the slower per-square walk that defines the semantics;
// the two are cross-checked against each other in the tests.
package movegen

import (
	"github.com/domino14/remolino/bitboard"
)

// Legal returns the set of empty squares where the mover can flip at least
// one opponent run. Per direction: seed with opponent discs directly ahead
// of a mover disc, extend the run through further opponent discs, then land
// one more step onto an empty square.
func Legal(own, opp bitboard.Mask) bitboard.Mask {
	empty := ^(own | opp)
	var moves bitboard.Mask
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		t := bitboard.Shift(own, d) & opp
		// Five more doublings cover the longest possible run on 8x8.
		for i := 0; i < 5; i++ {
			t |= bitboard.Shift(t, d) & opp
		}
		moves |= bitboard.Shift(t, d) & empty
	}
	return moves
}

// LegalByWalk is the reference generator: for every empty square, walk
// outward in each direction and accept the square once any direction shows
// an opponent run capped by a mover disc.
func LegalByWalk(own, opp bitboard.Mask) bitboard.Mask {
	occupied := own | opp
	var moves bitboard.Mask
	for sq := 0; sq < 64; sq++ {
		if occupied.Test(sq) {
			continue
		}
		if walkFindsRun(own, opp, sq) {
			moves = moves.Set(sq)
		}
	}
	return moves
}

func walkFindsRun(own, opp bitboard.Mask, sq int) bool {
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		pos := sq
		sawOpp := false
		for d.CanStep(pos) {
			pos += d.Delta()
			if opp.Test(pos) {
				sawOpp = true
				continue
			}
			if own.Test(pos) && sawOpp {
				return true
			}
			break
		}
	}
	return false
}

// Flips returns the discs flipped by the mover playing at sq. A ray's run
// of opponent discs counts only if the walk ends on a mover disc before an
// edge or an empty square. Occupied or out-of-range squares flip nothing;
// the zero return is a defined sentinel, not an error.
func Flips(own, opp bitboard.Mask, sq int) bitboard.Mask {
	if sq < 0 || sq > 63 {
		return 0
	}
	moveBit := bitboard.Mask(1) << uint(sq)
	if (own|opp)&moveBit != 0 {
		return 0
	}
	var flips bitboard.Mask
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		var run bitboard.Mask
		t := bitboard.Shift(moveBit, d) & opp
		for t != 0 {
			run |= t
			t = bitboard.Shift(t, d) & opp
		}
		if bitboard.Shift(run, d)&own != 0 {
			flips |= run
		}
	}
	return flips
}

// Apply plays sq for the mover with the given flip set. The mover gains the
// target square and the flips; the opponent loses exactly the flips, so the
// occupied count grows by one and the masks stay disjoint.
func Apply(own, opp bitboard.Mask, sq int, flips bitboard.Mask) (bitboard.Mask, bitboard.Mask) {
	return own.Set(sq) | flips, opp &^ flips
}
