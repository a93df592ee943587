// Package game holds the Position value type: the two occupancy masks plus
// the side to move, and the rules for applying moves to it.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/remolino/bitboard"
	"github.com/domino14/remolino/movegen"
)

const (
	Black = 0
	White = 1
)

// PassSquare marks a Move that placed no disc.
const PassSquare = -1

var ErrIllegalMove = errors.New("illegal move")

// Position is an immutable board state. The two masks are disjoint at every
// observation point; a square is empty iff it is absent from both.
type Position struct {
	Black bitboard.Mask
	White bitboard.Mask
	STM   int // Black or White
}

// Move records a played square together with the flip set it produced. It
// is transient: produced by Apply, consumed by hashing and PV display.
type Move struct {
	Square int
	Flips  bitboard.Mask
}

func PassMove() Move { return Move{Square: PassSquare} }

func (m Move) IsPass() bool { return m.Square == PassSquare }

func (m Move) ShortDescription() string {
	if m.IsPass() {
		return bitboard.PassNotation
	}
	return bitboard.SquareName(m.Square)
}

// StartPosition is the standard opening setup, black to move.
func StartPosition() Position {
	return Position{
		Black: bitboard.Mask(1)<<28 | bitboard.Mask(1)<<35, // e4, d5
		White: bitboard.Mask(1)<<27 | bitboard.Mask(1)<<36, // d4, e5
		STM:   Black,
	}
}

// OwnOpp returns the masks relative to the side to move.
func (p Position) OwnOpp() (bitboard.Mask, bitboard.Mask) {
	if p.STM == Black {
		return p.Black, p.White
	}
	return p.White, p.Black
}

func (p Position) LegalMask() bitboard.Mask {
	own, opp := p.OwnOpp()
	return movegen.Legal(own, opp)
}

// Apply plays sq for the side to move and returns the resulting position
// with the turn flipped. ErrIllegalMove if sq flips nothing.
func (p Position) Apply(sq int) (Position, Move, error) {
	own, opp := p.OwnOpp()
	flips := movegen.Flips(own, opp, sq)
	if flips == 0 {
		return p, Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, bitboard.SquareName(sq))
	}
	own, opp = movegen.Apply(own, opp, sq, flips)
	next := Position{STM: 1 - p.STM}
	if p.STM == Black {
		next.Black, next.White = own, opp
	} else {
		next.White, next.Black = own, opp
	}
	return next, Move{Square: sq, Flips: flips}, nil
}

// Pass flips the turn without consuming an empty square.
func (p Position) Pass() Position {
	return Position{Black: p.Black, White: p.White, STM: 1 - p.STM}
}

// Terminal reports whether neither side has a legal move.
func (p Position) Terminal() bool {
	return p.LegalMask() == 0 && p.Pass().LegalMask() == 0
}

func (p Position) Empties() int {
	return (^(p.Black | p.White)).PopCount()
}

// SpreadFor is the disc-count lead of player over their opponent.
func (p Position) SpreadFor(player int) int {
	diff := p.Black.PopCount() - p.White.PopCount()
	if player == White {
		return -diff
	}
	return diff
}

// LegalMovesString lists the side to move's legal squares in notation,
// lowest index first.
func (p Position) LegalMovesString() string {
	var sqs []int
	for m := p.LegalMask(); m != 0; m &= m - 1 {
		sqs = append(sqs, m.Lsb())
	}
	if len(sqs) == 0 {
		return bitboard.PassNotation
	}
	return strings.Join(lo.Map(sqs, func(sq int, _ int) string {
		return bitboard.SquareName(sq)
	}), " ")
}

// ToDisplayText draws the board with rank 8 on top. The output parses back
// through ParseDiagram.
func (p Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, " %d", rank+1)
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			switch {
			case p.Black.Test(sq):
				sb.WriteString(" X")
			case p.White.Test(sq):
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	stm := "Black"
	if p.STM == White {
		stm = "White"
	}
	fmt.Fprintf(&sb, "X: %d  O: %d  %s to move\n",
		p.Black.PopCount(), p.White.PopCount(), stm)
	return sb.String()
}

func (p Position) String() string {
	return fmt.Sprintf("black %#016x white %#016x stm %d",
		uint64(p.Black), uint64(p.White), p.STM)
}
