package bitboard

import (
	"errors"
	"fmt"
	"strings"
)

// PassNotation is the two-character stand-in for a turn with no move.
const PassNotation = "--"

var ErrInvalidSquare = errors.New("invalid square")

const fileChars = "abcdefgh"

// SquareName converts a square index to coordinate notation ("a1".."h8").
func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "??"
	}
	return fmt.Sprintf("%c%d", fileChars[sq%8], sq/8+1)
}

// ParseSquare converts coordinate notation back to a square index.
func ParseSquare(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := strings.IndexByte(fileChars, s[0])
	rank := int(s[1] - '1')
	if file < 0 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return rank*8 + file, nil
}
