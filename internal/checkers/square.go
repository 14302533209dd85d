package checkers

import (
	"errors"
	"fmt"
)

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// Square is a board square stored as its index rank*8 + file.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

var ErrInvalidSquare = errors.New("invalid square")

func indexOf(file, rank int) int { return rank*Files + file }

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

// NewSquare builds a square from 0-based file and rank. Out-of-range input is a caller error.
func NewSquare(file, rank int) Square { return Square(indexOf(file, rank)) }

func (s Square) File() int { return int(s) % Files }
func (s Square) Rank() int { return int(s) / Files }
func (s Square) Index() int { return int(s) }

// IsDark reports whether s is one of the playable squares (a1 is dark).
func (s Square) IsDark() bool { return (s.File()+s.Rank())%2 == 0 }

// MovedBy steps df files and dr ranks; false if the result is off the board.
func (s Square) MovedBy(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if !onBoard(f, r) {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// Compare orders squares by file, then rank.
func (s Square) Compare(o Square) int {
	switch {
	case s.File() != o.File():
		return s.File() - o.File()
	default:
		return s.Rank() - o.Rank()
	}
}

func (s Square) String() string {
	if s < 0 || int(s) >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	f := int(text[0]) - 'a'
	r := int(text[1]) - '1'
	if !onBoard(f, r) {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return NewSquare(f, r), nil
}
