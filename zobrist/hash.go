package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/remolino/bitboard"
)

const bignum = 1<<63 - 2

// Zobrist hashes an Othello position (two occupancy masks plus the side to
// move) into a 64-bit key for the transposition table.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable    [2][64]uint64
	whiteToMove uint64
}

func (z *Zobrist) Initialize() {
	for color := 0; color < 2; color++ {
		for sq := 0; sq < 64; sq++ {
			z.posTable[color][sq] = frand.Uint64n(bignum) + 1
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key for a position from scratch.
func (z *Zobrist) Hash(black, white bitboard.Mask, whiteMoves bool) uint64 {
	key := uint64(0)
	for m := black; m != 0; m &= m - 1 {
		key ^= z.posTable[0][m.Lsb()]
	}
	for m := white; m != 0; m &= m - 1 {
		key ^= z.posTable[1][m.Lsb()]
	}
	if whiteMoves {
		key ^= z.whiteToMove
	}
	return key
}

// AddMove incrementally updates key for the mover placing a disc on sq and
// flipping the discs in flips. Every flipped disc changes color, so it is
// XORed out of one color table and into the other; the side to move always
// alternates.
func (z *Zobrist) AddMove(key uint64, sq int, flips bitboard.Mask, mover int) uint64 {
	key ^= z.posTable[mover][sq]
	for m := flips; m != 0; m &= m - 1 {
		f := m.Lsb()
		key ^= z.posTable[0][f] ^ z.posTable[1][f]
	}
	return key ^ z.whiteToMove
}

// AddPass toggles only the side to move. Applying it twice restores key.
func (z *Zobrist) AddPass(key uint64) uint64 {
	return key ^ z.whiteToMove
}
