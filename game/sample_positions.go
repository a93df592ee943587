package game

// This file contains some sample positions, used solely for testing.

import (
	"fmt"
	"strings"
)

// A Diagram is a text drawing of a board, rank 8 on top: X for black,
// O for white, . for empty. Rank labels and disc counts from ToDisplayText
// output are ignored, so diagrams round-trip through the display code.
type Diagram string

const (
	// OneEmptyCorner leaves only h8 open. Black to move plays it and
	// finishes 64-0; white to move has to pass first and loses everything.
	OneEmptyCorner Diagram = `
	X X X X X X O .
	X X X X X X X X
	X X X X X X X X
	X X X X X X X X
	X X X X X X X X
	X X X X X X X X
	X X X X X X X X
	X X X X X X X X
	`

	// WhiteMustPass is a one-sided early position: white's only disc sits at
	// the end of a black run on the bottom rank, so every white ray either
	// leaves the board or finds no run to cap. Black can still play e1.
	WhiteMustPass Diagram = `
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	X X X O . . . .
	`

	// NorthEdgeRuns has contiguous same-color runs off both upper corners,
	// handy for stability checks.
	NorthEdgeRuns Diagram = `
	X X X . . O O O
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	`
)

// ParseDiagram builds a Position from a diagram with the given side to move.
func ParseDiagram(d Diagram, stm int) (Position, error) {
	var cells []byte
	for _, line := range strings.Split(string(d), "\n") {
		for _, tok := range strings.Fields(line) {
			switch tok {
			case "X", "O", ".":
				cells = append(cells, tok[0])
			}
		}
	}
	if len(cells) != 64 {
		return Position{}, fmt.Errorf("diagram has %d cells; want 64", len(cells))
	}
	p := Position{STM: stm}
	for i, c := range cells {
		// cell 0 is a8; flip ranks to bit order.
		rank := 7 - i/8
		sq := rank*8 + i%8
		switch c {
		case 'X':
			p.Black = p.Black.Set(sq)
		case 'O':
			p.White = p.White.Set(sq)
		}
	}
	return p, nil
}
