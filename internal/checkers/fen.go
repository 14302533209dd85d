package checkers

import (
	"errors"
	"fmt"
	"strings"
)

// StartPosition is the encoding of the standard opening.
const StartPosition = "1m1m1m1m/m1m1m1m1/1m1m1m1m/8/8/M1M1M1M1/1M1M1M1M/M1M1M1M1 w"

var ErrInvalidPosition = errors.New("invalid position")

// EncodeBackend writes ranks 8 to 1 separated by '/', digits for runs of empty
// squares, M/K for White and m/k for Black, then a space and w or b.
func EncodeBackend(b Backend, toMove Color) string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		if r < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			p, ok := b.Piece(NewSquare(f, r))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func (b *Board) Encode() string { return EncodeBackend(b.backend, b.toMove) }

// DecodeBitBoard parses an encoded position. Pieces on light squares are rejected.
func DecodeBitBoard(text string) (*BitBoard, Color, error) {
	bad := func(why string) (*BitBoard, Color, error) {
		return nil, White, fmt.Errorf("%w: %s", ErrInvalidPosition, why)
	}
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return bad("want placement and side to move")
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return bad(fmt.Sprintf("got %d ranks", len(rows)))
	}

	bb := EmptyBitBoard()
	for i, row := range rows {
		r := Ranks - 1 - i
		f := 0
		for _, ch := range row {
			if f >= Files {
				return bad(fmt.Sprintf("rank %d too long", r+1))
			}
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			p, ok := pieceFromRune(ch)
			if !ok {
				return bad(fmt.Sprintf("unknown piece %q", ch))
			}
			sq := NewSquare(f, r)
			if !sq.IsDark() {
				return bad(fmt.Sprintf("piece on light square %s", sq))
			}
			bb.SetPiece(sq, p)
			f++
		}
		if f != Files {
			return bad(fmt.Sprintf("rank %d has %d files", r+1, f))
		}
	}

	var toMove Color
	switch parts[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return bad(fmt.Sprintf("side to move %q", parts[1]))
	}
	return bb, toMove, nil
}

// DecodeBoard parses an encoded position into a playable Board.
func DecodeBoard(text string) (*Board, error) {
	bb, toMove, err := DecodeBitBoard(text)
	if err != nil {
		return nil, err
	}
	return newBoardToMove(bb, toMove), nil
}
