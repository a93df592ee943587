package eval

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/remolino/bitboard"
)

// MinRegionSize drops tiny empty pockets from the parity analysis.
const MinRegionSize = 3

type Controller uint8

const (
	BlackControls Controller = iota
	WhiteControls
	Contested
)

func (c Controller) String() string {
	switch c {
	case BlackControls:
		return "black"
	case WhiteControls:
		return "white"
	}
	return "contested"
}

// Region is a maximal connected set of empty squares together with the
// side whose discs dominate its border.
type Region struct {
	Mask       bitboard.Mask
	Controller Controller
}

func (r Region) String() string {
	return fmt.Sprintf("%d@%s", r.Mask.PopCount(), r.Controller)
}

// ParityRegions partitions the empty squares into 8-connected regions of
// MinRegionSize or more, assigning each to the color with strictly more
// discs adjacent to the region, or Contested on a tie. Regions appear in
// order of their lowest square index.
func ParityRegions(black, white bitboard.Mask) []Region {
	empty := ^(black | white)
	var regions []Region
	visited := bitboard.Mask(0)
	for rest := empty; rest != 0; {
		seed := bitboard.Mask(1) << uint(rest.Lsb())
		region := floodRegion(seed, empty)
		visited |= region
		rest = empty &^ visited
		if region.PopCount() < MinRegionSize {
			continue
		}
		regions = append(regions, Region{
			Mask:       region,
			Controller: regionController(region, black, white),
		})
	}
	return regions
}

func floodRegion(seed, empty bitboard.Mask) bitboard.Mask {
	region := seed
	for {
		grown := region | (empty & bitboard.Neighbors(region))
		if grown == region {
			return region
		}
		region = grown
	}
}

func regionController(region, black, white bitboard.Mask) Controller {
	border := bitboard.Neighbors(region)
	blackAdj := (border & black).PopCount()
	whiteAdj := (border & white).PopCount()
	switch {
	case blackAdj > whiteAdj:
		return BlackControls
	case whiteAdj > blackAdj:
		return WhiteControls
	}
	return Contested
}

// RegionsString renders a region list compactly for logs.
func RegionsString(regions []Region) string {
	return strings.Join(lo.Map(regions, func(r Region, _ int) string {
		return r.String()
	}), " ")
}
