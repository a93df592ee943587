// Package kernel is the boundary the host adapter calls: six operations
// over two raw occupancy masks and a side-to-move flag. Bad inputs map to
// defined sentinel outputs, never to errors; see the individual operations.
package kernel

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/remolino/bitboard"
	"github.com/domino14/remolino/endgame/negamax"
	"github.com/domino14/remolino/eval"
	"github.com/domino14/remolino/game"
	"github.com/domino14/remolino/movegen"
)

// Side flags at the boundary. 0 is the first color (black), 1 the second.
const (
	SideBlack = 0
	SideWhite = 1
)

// Region pairs an empty-region mask with its controller flag:
// 0 black, 1 white, 2 contested.
type Region struct {
	Mask       uint64
	Controller uint8
}

func ownOpp(black, white uint64, side int) (bitboard.Mask, bitboard.Mask) {
	if side == SideWhite {
		return bitboard.Mask(white), bitboard.Mask(black)
	}
	return bitboard.Mask(black), bitboard.Mask(white)
}

// LegalMask returns the squares where side has a legal move.
func LegalMask(black, white uint64, side int) uint64 {
	own, opp := ownOpp(black, white, side)
	return uint64(movegen.Legal(own, opp))
}

// FlipMask returns the discs flipped by side playing at sq, or 0 for an
// occupied or out-of-range square.
func FlipMask(black, white uint64, side, sq int) uint64 {
	own, opp := ownOpp(black, white, side)
	return uint64(movegen.Flips(own, opp, sq))
}

// PotentialMobility is the signed frontier-disc heuristic; positive favors
// side.
func PotentialMobility(black, white uint64, side int) int16 {
	return eval.PotentialMobility(bitboard.Mask(black), bitboard.Mask(white), side)
}

// StabilityProxy is stable black discs minus stable white discs.
func StabilityProxy(black, white uint64) int16 {
	return eval.StabilityProxy(bitboard.Mask(black), bitboard.Mask(white))
}

// ParityRegions lists the empty regions of 3+ squares and their controllers
// in first-discovery order.
func ParityRegions(black, white uint64) []Region {
	regions := eval.ParityRegions(bitboard.Mask(black), bitboard.Mask(white))
	out := make([]Region, len(regions))
	for i, r := range regions {
		out[i] = Region{Mask: uint64(r.Mask), Controller: uint8(r.Controller)}
	}
	return out
}

// ExactSolver returns the exact endgame spread ×100 for side, searching
// the given number of empties. It returns the neutral 0 immediately when
// empties exceeds the solver's limit, and 0 again if the solve times out
// internally. tableSizeHintMB bounds the transposition table; 0 means the
// solver sizes it from system memory.
func ExactSolver(black, white uint64, side, empties, tableSizeHintMB int) int16 {
	if empties < 0 || empties > negamax.MaxEmpties {
		return 0
	}
	pos := game.Position{
		Black: bitboard.Mask(black),
		White: bitboard.Mask(white),
		STM:   side,
	}
	s := new(negamax.Solver)
	if err := s.Init(pos); err != nil {
		log.Err(err).Msg("solver-init-failed")
		return 0
	}
	if tableSizeHintMB > 0 {
		s.SetTableSizeHint(tableSizeHintMB << 20)
	}
	val, _, err := s.Solve(context.Background(), empties)
	if err != nil {
		log.Err(err).Msg("exact-solve-failed")
		return 0
	}
	return val
}
