package negamax

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/remolino/game"
)

// Credit: MIT-licensed https://github.com/algerbrex/blunder/blob/main/engine/search.go
type PVLine struct {
	Moves []game.Move
	score int16
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(move game.Move, newPVLine PVLine, score int16) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, move)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// Get the best move from the principal variation line.
func (pvLine *PVLine) GetPVMove() game.Move {
	return pvLine.Moves[0]
}

// Convert the principal variation line to a string.
func (pvLine PVLine) String() string {
	s := fmt.Sprintf("PV; val %d\n", pvLine.score)
	for i, m := range pvLine.Moves {
		s += fmt.Sprintf("%d: %s (%d flipped)\n", i+1, m.ShortDescription(), m.Flips.PopCount())
	}
	return s
}

func (pvLine PVLine) NLBString() string {
	// no line breaks
	return fmt.Sprintf("PV; val %d; %s", pvLine.score,
		strings.Join(lo.Map(pvLine.Moves, func(m game.Move, _ int) string {
			return m.ShortDescription()
		}), " "))
}
