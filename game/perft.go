package game

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// Perft counts the move sequences of the given length from p. A forced
// pass consumes no depth; a position where both sides are stuck is a leaf.
func Perft(p Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := p.LegalMask()
	if legal == 0 {
		passed := p.Pass()
		if passed.LegalMask() == 0 {
			return 1
		}
		return Perft(passed, depth)
	}
	var total uint64
	for m := legal; m != 0; m &= m - 1 {
		child, _, err := p.Apply(m.Lsb())
		if err != nil {
			panic(err) // legal mask and flip mask disagree
		}
		total += Perft(child, depth-1)
	}
	return total
}

// PerftChecksum fingerprints the perft counts for depths 1..maxDepth as a
// single xxhash, for quick regression comparison across engine revisions.
func PerftChecksum(p Position, maxDepth int) uint64 {
	counts := make([]string, 0, maxDepth)
	for d := 1; d <= maxDepth; d++ {
		counts = append(counts, strconv.FormatUint(Perft(p, d), 10))
	}
	return xxhash.Sum64String(strings.Join(counts, ","))
}
