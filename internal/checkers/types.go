package checkers

type Color int8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type PieceKind int8

const (
	Man PieceKind = iota
	King
)

func (k PieceKind) String() string {
	if k == King {
		return "King"
	}
	return "Man"
}

// Direction is a single diagonal step.
type Direction struct {
	File, Rank int
}

var (
	whiteForward = []Direction{{-1, 1}, {1, 1}}
	blackForward = []Direction{{-1, -1}, {1, -1}}

	whiteKingDirs = []Direction{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
	blackKingDirs = []Direction{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

type Piece struct {
	Color Color
	Kind  PieceKind
}

var (
	WhiteMan  = Piece{White, Man}
	WhiteKing = Piece{White, King}
	BlackMan  = Piece{Black, Man}
	BlackKing = Piece{Black, King}
)

func (p Piece) IsKing() bool { return p.Kind == King }

// Promoted returns the king of the same color.
func (p Piece) Promoted() Piece {
	p.Kind = King
	return p
}

// Directions lists the single steps p may take: the color's forward pair first,
// then the backward pair for kings. The returned slice is shared; do not modify it.
func (p Piece) Directions() []Direction {
	switch {
	case p.Color == White && p.IsKing():
		return whiteKingDirs
	case p.Color == White:
		return whiteForward
	case p.IsKing():
		return blackKingDirs
	default:
		return blackForward
	}
}

// PromotionRank is the rank on which a man of this color is crowned.
func (p Piece) PromotionRank() int {
	if p.Color == White {
		return Ranks - 1
	}
	return 0
}

// Rune is the position-codec letter: M/K for White, m/k for Black.
func (p Piece) Rune() rune {
	r := 'm'
	if p.IsKing() {
		r = 'k'
	}
	if p.Color == White {
		r -= 'a' - 'A'
	}
	return r
}

func pieceFromRune(r rune) (Piece, bool) {
	switch r {
	case 'M':
		return WhiteMan, true
	case 'K':
		return WhiteKing, true
	case 'm':
		return BlackMan, true
	case 'k':
		return BlackKing, true
	}
	return Piece{}, false
}

// Symbol is the unicode draughts glyph used by the text renderer.
func (p Piece) Symbol() string {
	switch p {
	case WhiteMan:
		return "⛀"
	case WhiteKing:
		return "⛁"
	case BlackMan:
		return "⛂"
	default:
		return "⛃"
	}
}

func (p Piece) String() string { return p.Color.String() + " " + p.Kind.String() }
