package checkers

import (
	"errors"
	"fmt"
	"strings"
)

// Ply is one complete turn: a single step or a full capture chain.
type Ply struct {
	piece    Piece
	from     Square
	to       Square
	promoted bool
	captures []Square
}

// Piece is the piece as it stands after the ply (already crowned when Promoted).
func (p Ply) Piece() Piece { return p.piece }
func (p Ply) From() Square { return p.from }
func (p Ply) To() Square { return p.to }
func (p Ply) Promoted() bool { return p.promoted }
func (p Ply) IsCapture() bool { return len(p.captures) > 0 }

// Captures lists the removed squares in capture order.
func (p Ply) Captures() []Square {
	out := make([]Square, len(p.captures))
	copy(out, p.captures)
	return out
}

func (p Ply) Equal(o Ply) bool {
	if p.piece != o.piece || p.from != o.from || p.to != o.to || p.promoted != o.promoted {
		return false
	}
	if len(p.captures) != len(o.captures) {
		return false
	}
	for i := range p.captures {
		if p.captures[i] != o.captures[i] {
			return false
		}
	}
	return true
}

// String renders the ply as from-to, a "p" when crowned, then "x<square>" per capture.
func (p Ply) String() string {
	var sb strings.Builder
	sb.WriteString(p.from.String())
	sb.WriteByte('-')
	sb.WriteString(p.to.String())
	if p.promoted {
		sb.WriteByte('p')
	}
	for _, c := range p.captures {
		sb.WriteByte('x')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// PlyBuilder accumulates a ply during generation. Every method returns a new
// builder; the receiver is left untouched, so chain branches never share captures.
type PlyBuilder struct {
	piece    Piece
	from     Square
	to       Square
	promoted bool
	captures []Square
}

func NewPlyBuilder(piece Piece, from Square) PlyBuilder {
	return PlyBuilder{piece: piece, from: from, to: from}
}

func (b PlyBuilder) Step(to Square) PlyBuilder {
	b.to = to
	return b
}

func (b PlyBuilder) Capture(to, captured Square) PlyBuilder {
	return b.CaptureMultiple(to, []Square{captured})
}

func (b PlyBuilder) CaptureMultiple(to Square, captured []Square) PlyBuilder {
	caps := make([]Square, 0, len(b.captures)+len(captured))
	caps = append(caps, b.captures...)
	caps = append(caps, captured...)
	b.captures = caps
	b.to = to
	return b
}

func (b PlyBuilder) Promote() PlyBuilder {
	b.promoted = true
	b.piece = b.piece.Promoted()
	return b
}

func (b PlyBuilder) Build() Ply {
	var caps []Square
	if len(b.captures) > 0 {
		caps = make([]Square, len(b.captures))
		copy(caps, b.captures)
	}
	return Ply{piece: b.piece, from: b.from, to: b.to, promoted: b.promoted, captures: caps}
}

var ErrInvalidNotation = errors.New("invalid ply notation")

// PlyText is a parsed notation string. It carries no piece, so it has to be
// matched against generated plies (see Board.FindPly).
type PlyText struct {
	From     Square
	To       Square
	Promoted bool
	Captures []Square
}

// ParsePly reads notation such as "c3-e5xd4" or "a5-e1pxb4xd2". A trailing "p"
// after the captures is accepted as well.
func ParsePly(text string) (PlyText, error) {
	bad := func() (PlyText, error) {
		return PlyText{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	s := strings.TrimSpace(text)
	if len(s) < 5 || s[2] != '-' {
		return bad()
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return bad()
	}
	to, err := ParseSquare(s[3:5])
	if err != nil {
		return bad()
	}
	out := PlyText{From: from, To: to}
	rest := s[5:]
	if strings.HasPrefix(rest, "p") {
		out.Promoted = true
		rest = rest[1:]
	} else if strings.HasSuffix(rest, "p") {
		out.Promoted = true
		rest = rest[:len(rest)-1]
	}
	for len(rest) > 0 {
		if len(rest) < 3 || rest[0] != 'x' {
			return bad()
		}
		sq, err := ParseSquare(rest[1:3])
		if err != nil {
			return bad()
		}
		out.Captures = append(out.Captures, sq)
		rest = rest[3:]
	}
	return out, nil
}

// Matches reports whether the generated ply p is the one this text names.
func (t PlyText) Matches(p Ply) bool {
	if p.from != t.From || p.to != t.To || p.promoted != t.Promoted || len(p.captures) != len(t.Captures) {
		return false
	}
	for i := range t.Captures {
		if p.captures[i] != t.Captures[i] {
			return false
		}
	}
	return true
}
