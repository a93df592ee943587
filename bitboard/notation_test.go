package bitboard

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestSquareName(t *testing.T) {
	is := is.New(t)
	is.Equal(SquareName(0), "a1")
	is.Equal(SquareName(7), "h1")
	is.Equal(SquareName(56), "a8")
	is.Equal(SquareName(63), "h8")
	is.Equal(SquareName(28), "e4")
	is.Equal(SquareName(-1), "??")
	is.Equal(SquareName(64), "??")
}

func TestParseSquare(t *testing.T) {
	is := is.New(t)
	for sq := 0; sq < 64; sq++ {
		parsed, err := ParseSquare(SquareName(sq))
		is.NoErr(err)
		is.Equal(parsed, sq)
	}
	_, err := ParseSquare("i1")
	is.True(errors.Is(err, ErrInvalidSquare))
	_, err = ParseSquare("a9")
	is.True(errors.Is(err, ErrInvalidSquare))
	_, err = ParseSquare("e10")
	is.True(errors.Is(err, ErrInvalidSquare))
}
