package kernel

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/remolino/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

const (
	startBlack = uint64(1)<<28 | uint64(1)<<35
	startWhite = uint64(1)<<27 | uint64(1)<<36
)

func TestLegalMask(t *testing.T) {
	assert.Equal(t, uint64(0x0000102004080000), LegalMask(startBlack, startWhite, SideBlack))
	assert.Equal(t, uint64(0x0000080420100000), LegalMask(startBlack, startWhite, SideWhite))
}

func TestFlipMaskSentinels(t *testing.T) {
	// d3 flips d4 for black.
	assert.Equal(t, uint64(1)<<27, FlipMask(startBlack, startWhite, SideBlack, 19))
	// occupied and out-of-range squares are quiet zeros.
	assert.Zero(t, FlipMask(startBlack, startWhite, SideBlack, 27))
	assert.Zero(t, FlipMask(startBlack, startWhite, SideBlack, 64))
	assert.Zero(t, FlipMask(startBlack, startWhite, SideBlack, -1))
}

func TestHeuristics(t *testing.T) {
	assert.Equal(t, int16(0), PotentialMobility(startBlack, startWhite, SideBlack))
	assert.Equal(t, PotentialMobility(startBlack, startWhite, SideBlack),
		-PotentialMobility(startBlack, startWhite, SideWhite))
	assert.Equal(t, int16(0), StabilityProxy(startBlack, startWhite))
}

func TestParityRegions(t *testing.T) {
	regions := ParityRegions(startBlack, startWhite)
	assert.Len(t, regions, 1)
	assert.Equal(t, uint8(2), regions[0].Controller)
	assert.Equal(t, ^(startBlack | startWhite), regions[0].Mask)
}

func TestExactSolverThreshold(t *testing.T) {
	// Above the exact threshold the caller gets the neutral sentinel and
	// must fall back to a heuristic.
	assert.Zero(t, ExactSolver(startBlack, startWhite, SideBlack, 17, 1))
	assert.Zero(t, ExactSolver(startBlack, startWhite, SideBlack, 255, 1))
	assert.Zero(t, ExactSolver(startBlack, startWhite, SideBlack, -1, 1))
}

func TestExactSolverOneEmpty(t *testing.T) {
	pos, err := game.ParseDiagram(game.OneEmptyCorner, game.Black)
	assert.NoError(t, err)
	black, white := uint64(pos.Black), uint64(pos.White)
	assert.Equal(t, int16(6400), ExactSolver(black, white, SideBlack, 1, 1))
	assert.Equal(t, int16(-6400), ExactSolver(black, white, SideWhite, 1, 1))
}

func TestExactSolverZeroEmpties(t *testing.T) {
	// empties 0 scores the standing position for the side to move.
	assert.Equal(t, int16(0), ExactSolver(startBlack, startWhite, SideBlack, 0, 0))
}
