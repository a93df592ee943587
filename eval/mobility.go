// Package eval implements the positional heuristics: potential mobility,
// the corner-flood stability proxy, and parity/region control. All of them
// are signed so that swapping the two colors negates the result.
package eval

import (
	"github.com/domino14/remolino/bitboard"
	"github.com/domino14/remolino/game"
)

// PotentialMobility counts opponent discs touching an empty square, minus
// the mover's discs touching one: a proxy for how many future moves each
// side threatens. Positive favors the side to move.
func PotentialMobility(black, white bitboard.Mask, stm int) int16 {
	own, opp := black, white
	if stm == game.White {
		own, opp = white, black
	}
	frontier := bitboard.Neighbors(^(black | white))
	return int16((opp & frontier).PopCount() - (own & frontier).PopCount())
}
