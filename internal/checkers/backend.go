package checkers

// Backend is a board representation that can generate legal plies. BitBoard is
// the standard one; other encodings only need to satisfy this interface.
type Backend interface {
	// Piece returns the occupant of sq, if any.
	Piece(sq Square) (Piece, bool)
	// SetPiece places p on sq, replacing any occupant.
	SetPiece(sq Square, p Piece)
	// RemovePiece empties sq and returns what was there.
	RemovePiece(sq Square) (Piece, bool)
	// RemovePieces empties every listed square and returns the removed pieces.
	RemovePieces(sqs []Square) []Piece

	// LegalPlies returns every complete ply for c, captures only when any capture exists.
	// It does not memoize; see PlyCache.
	LegalPlies(c Color) []Ply
	// Ply applies p without validating it.
	Ply(p Ply)

	// ManCount counts uncrowned pieces of c.
	ManCount(c Color) int
	// KingCount counts kings of c.
	KingCount(c Color) int

	// StateHash digests the piece placement (side to move is not included).
	StateHash() uint64
	// Clone returns an independent deep copy.
	Clone() Backend
}

// PieceCount is the number of pieces of c on the board.
func PieceCount(b Backend, c Color) int {
	return b.ManCount(c) + b.KingCount(c)
}

// applyPly is the default ply application shared by backends.
func applyPly(b Backend, p Ply) {
	b.RemovePiece(p.from)
	b.SetPiece(p.to, p.piece)
	b.RemovePieces(p.captures)
}
