package eval

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/remolino/bitboard"
	"github.com/domino14/remolino/game"
)

func randomBoard() (bitboard.Mask, bitboard.Mask) {
	black := bitboard.Mask(frand.Uint64n(1 << 63))
	white := bitboard.Mask(frand.Uint64n(1<<63)) &^ black
	return black, white
}

func TestPotentialMobilityStartPosition(t *testing.T) {
	is := is.New(t)
	p := game.StartPosition()
	// All four center discs touch empties; the counts cancel.
	is.Equal(PotentialMobility(p.Black, p.White, game.Black), int16(0))
	is.Equal(PotentialMobility(p.Black, p.White, game.White), int16(0))
}

func TestPotentialMobilityFavorsQuieterSide(t *testing.T) {
	is := is.New(t)
	// Black's lone disc is buried in a white clump; white exposes many
	// frontier discs, so black to move scores positive.
	p, err := game.ParseDiagram(`
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . O O O . . .
	. . O X O . . .
	. . O O O . . .
	. . . . . . . .
	. . . . . . . .
	`, game.Black)
	is.NoErr(err)
	is.Equal(PotentialMobility(p.Black, p.White, game.Black), int16(8))
	is.Equal(PotentialMobility(p.Black, p.White, game.White), int16(-8))
}

func TestPotentialMobilityAntisymmetric(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 200; i++ {
		black, white := randomBoard()
		is.Equal(PotentialMobility(black, white, game.Black),
			-PotentialMobility(black, white, game.White))
	}
}

func TestStabilityNoCorners(t *testing.T) {
	is := is.New(t)
	p := game.StartPosition()
	is.Equal(StabilityProxy(p.Black, p.White), int16(0))
}

func TestStabilityCornerFlood(t *testing.T) {
	is := is.New(t)
	// Black a1, a2, b1 with white b2: the flood grows from the a1 corner
	// along the touching black discs; the lone white disc has no corner.
	black := bitboard.Mask(0).Set(0).Set(1).Set(8)
	white := bitboard.Mask(0).Set(9)
	is.Equal(StabilityProxy(black, white), int16(3))
	is.Equal(StabilityProxy(white, black), int16(-3))
}

func TestStabilityEdgeRuns(t *testing.T) {
	is := is.New(t)
	p, err := game.ParseDiagram(game.NorthEdgeRuns, game.Black)
	is.NoErr(err)
	// a8-b8-c8 black off one corner, f8-g8-h8 white off the other.
	is.Equal(StabilityProxy(p.Black, p.White), int16(0))
	is.Equal(StabilityProxy(p.Black, 0), int16(3))
	is.Equal(StabilityProxy(0, p.White), int16(-3))
}

func TestStabilityDisconnectedDiscIsNotStable(t *testing.T) {
	is := is.New(t)
	// A corner plus a far-away disc of the same color: only the corner
	// (and nothing across the gap) is stable.
	black := bitboard.Mask(0).Set(0).Set(27)
	is.Equal(StabilityProxy(black, 0), int16(1))
}

func TestStabilityAntisymmetric(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 200; i++ {
		black, white := randomBoard()
		is.Equal(StabilityProxy(black, white), -StabilityProxy(white, black))
	}
}

func TestParityRegionsStartPosition(t *testing.T) {
	is := is.New(t)
	p := game.StartPosition()
	regions := ParityRegions(p.Black, p.White)
	is.Equal(len(regions), 1)
	is.Equal(regions[0].Mask.PopCount(), 60)
	is.Equal(regions[0].Controller, Contested)
}

func TestParityRegionsProperties(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 200; i++ {
		black, white := randomBoard()
		empty := ^(black | white)
		var union bitboard.Mask
		for _, r := range ParityRegions(black, white) {
			is.True(r.Mask.PopCount() >= MinRegionSize)
			is.Equal(r.Mask&^empty, bitboard.Mask(0)) // regions are empty squares
			is.Equal(r.Mask&union, bitboard.Mask(0))  // pairwise disjoint
			union |= r.Mask
		}
	}
}

func TestParityRegionsControllers(t *testing.T) {
	is := is.New(t)
	// Bottom-left empty pocket bordered only by black; top-right pocket
	// bordered only by white. The walls split the rest of the empties into
	// contested territory.
	p, err := game.ParseDiagram(`
	. . . . . O . .
	. . . . . O . .
	. . . . . O O O
	. . . . . . . .
	. . . . . . . .
	X X X . . . . .
	. . X . . . . .
	. . X . . . . .
	`, game.Black)
	is.NoErr(err)
	regions := ParityRegions(p.Black, p.White)
	is.Equal(len(regions), 3)
	// Insertion order follows the lowest square of each region: the black
	// pocket holds a1, the open middle holds d1, the white pocket g7.
	is.Equal(regions[0].Controller, BlackControls)
	is.Equal(regions[0].Mask.PopCount(), 4) // a1 b1 a2 b2
	is.Equal(regions[1].Controller, Contested)
	is.Equal(regions[2].Controller, WhiteControls)
	is.Equal(regions[2].Mask.PopCount(), 4) // g7 h7 g8 h8
}

func TestParityRegionsDropsSmallPockets(t *testing.T) {
	is := is.New(t)
	// Only h8 and g8 empty next to a full board: pocket of 2 is dropped.
	full := bitboard.Full &^ (bitboard.Mask(0).Set(62).Set(63))
	regions := ParityRegions(full, 0)
	is.Equal(len(regions), 0)
}

func TestRegionsString(t *testing.T) {
	is := is.New(t)
	p := game.StartPosition()
	is.Equal(RegionsString(ParityRegions(p.Black, p.White)), "60@contested")
}
