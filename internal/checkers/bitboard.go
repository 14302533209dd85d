package checkers

import (
	"errors"

	"shanks/internal/bitfield"
)

const (
	defaultWhite bitfield.BitField = 0x000000000055aa55
	defaultBlack bitfield.BitField = 0xaa55aa0000000000
)

var ErrCorruptBoard = errors.New("corrupt board")

// BitBoard keeps one occupancy mask per color plus a mask of crowned squares.
// white and black are disjoint and kings is a subset of their union.
type BitBoard struct {
	white bitfield.BitField
	black bitfield.BitField
	kings bitfield.BitField
}

var _ Backend = (*BitBoard)(nil)

// NewBitBoard returns the standard opening: twelve men per side on the dark
// squares of the three home ranks.
func NewBitBoard() *BitBoard {
	return &BitBoard{white: defaultWhite, black: defaultBlack}
}

func EmptyBitBoard() *BitBoard {
	return &BitBoard{}
}

func (b *BitBoard) colorField(c Color) *bitfield.BitField {
	if c == White {
		return &b.white
	}
	return &b.black
}

func (b *BitBoard) occupied() bitfield.BitField {
	return b.white.Union(b.black)
}

// Validate checks the mask invariants.
func (b *BitBoard) Validate() error {
	if !b.white.Intersection(b.black).IsEmpty() {
		return errors.Join(ErrCorruptBoard, errors.New("white and black overlap"))
	}
	if !b.kings.IsSubset(b.occupied()) {
		return errors.Join(ErrCorruptBoard, errors.New("king on empty square"))
	}
	return nil
}

func (b *BitBoard) Piece(sq Square) (Piece, bool) {
	i := sq.Index()
	kind := Man
	if b.kings.Get(i) {
		kind = King
	}
	switch {
	case b.white.Get(i):
		return Piece{White, kind}, true
	case b.black.Get(i):
		return Piece{Black, kind}, true
	}
	return Piece{}, false
}

func (b *BitBoard) SetPiece(sq Square, p Piece) {
	i := sq.Index()
	b.white.Unset(i)
	b.black.Unset(i)
	b.colorField(p.Color).Set(i)
	if p.IsKing() {
		b.kings.Set(i)
	} else {
		b.kings.Unset(i)
	}
}

func (b *BitBoard) RemovePiece(sq Square) (Piece, bool) {
	p, ok := b.Piece(sq)
	if ok {
		i := sq.Index()
		b.white.Unset(i)
		b.black.Unset(i)
		b.kings.Unset(i)
	}
	return p, ok
}

func (b *BitBoard) RemovePieces(sqs []Square) []Piece {
	removed := make([]Piece, 0, len(sqs))
	var mask bitfield.BitField
	for _, sq := range sqs {
		if p, ok := b.Piece(sq); ok {
			removed = append(removed, p)
			mask.Set(sq.Index())
		}
	}
	b.white = b.white.Difference(mask)
	b.black = b.black.Difference(mask)
	b.kings = b.kings.Difference(mask)
	return removed
}

func (b *BitBoard) Ply(p Ply) { applyPly(b, p) }

func (b *BitBoard) ManCount(c Color) int {
	return b.colorField(c).Difference(b.kings).Count()
}

func (b *BitBoard) KingCount(c Color) int {
	return b.colorField(c).Intersection(b.kings).Count()
}

func (b *BitBoard) StateHash() uint64 {
	initZobrist()

	var h uint64
	for _, c := range [2]Color{White, Black} {
		field := *b.colorField(c)
		for _, i := range field.Difference(b.kings).Positions() {
			h ^= pieceHashKey(Piece{c, Man}, i)
		}
		for _, i := range field.Intersection(b.kings).Positions() {
			h ^= pieceHashKey(Piece{c, King}, i)
		}
	}
	return h
}

func (b *BitBoard) Clone() Backend {
	cp := *b
	return &cp
}

func (b *BitBoard) LegalPlies(c Color) []Ply {
	var plies []Ply
	capturing := false
	for _, i := range b.colorField(c).Positions() {
		captured, found := b.pliesFrom(Square(i), c, capturing)
		if captured && !capturing {
			// a capture anywhere voids every quiet ply collected so far
			plies = plies[:0]
			capturing = true
		}
		plies = append(plies, found...)
	}
	return plies
}

// pliesFrom generates the plies of the piece on sq. With onlyCaptures set no
// quiet steps are produced. The bool reports whether capture mode is active.
func (b *BitBoard) pliesFrom(sq Square, c Color, onlyCaptures bool) (bool, []Ply) {
	piece, ok := b.Piece(sq)
	if !ok || piece.Color != c {
		return false, nil
	}

	all := b.occupied()
	allies := *b.colorField(c)

	var plies []Ply
	captures := onlyCaptures

	for _, d := range piece.Directions() {
		target, ok := sq.MovedBy(d.File, d.Rank)
		if !ok {
			continue
		}
		pb := NewPlyBuilder(piece, sq)

		if !all.Get(target.Index()) {
			if captures {
				continue
			}
			pb = pb.Step(target)
			if !piece.IsKing() && target.Rank() == piece.PromotionRank() {
				pb = pb.Promote()
			}
			plies = append(plies, pb.Build())
			continue
		}

		if allies.Get(target.Index()) {
			continue
		}
		landing, ok := target.MovedBy(d.File, d.Rank)
		if !ok || all.Get(landing.Index()) {
			continue
		}

		if !captures {
			plies = plies[:0]
		}
		captures = true

		pb = pb.Capture(landing, target)
		if !piece.IsKing() && landing.Rank() == piece.PromotionRank() {
			pb = pb.Promote()
		}

		// a man crowned mid-chain keeps jumping as a king
		next := *b
		next.Ply(pb.Build())
		_, more := next.pliesFrom(landing, c, true)
		if len(more) == 0 {
			plies = append(plies, pb.Build())
			continue
		}
		for _, cont := range more {
			branch := pb.CaptureMultiple(cont.to, cont.captures)
			if cont.promoted && !branch.promoted {
				branch = branch.Promote()
			}
			plies = append(plies, branch.Build())
		}
	}

	return captures, plies
}
