package checkers

import (
	"errors"
	"fmt"
)

var ErrPlyNotFound = errors.New("ply not found")

// Board drives a game: a backend, the side to move and the current legal plies.
// All mutation goes through Ply.
type Board struct {
	backend  Backend
	toMove   Color
	selected Square
	cache    *PlyCache
	legal    []Ply
}

func NewBoard(backend Backend) *Board {
	return newBoardToMove(backend, White)
}

// NewDefaultBoard sets up the standard opening with White to move.
func NewDefaultBoard() *Board {
	return NewBoard(NewBitBoard())
}

func newBoardToMove(backend Backend, toMove Color) *Board {
	b := &Board{
		backend:  backend,
		toMove:   toMove,
		selected: NoSquare,
		cache:    NewPlyCache(),
	}
	b.legal = b.cache.LegalPlies(b.backend, b.toMove)
	return b
}

// Ply applies p, which must come from LegalPlies, and passes the turn.
func (b *Board) Ply(p Ply) {
	b.backend.Ply(p)
	b.toMove = b.toMove.Opposite()
	b.selected = NoSquare
	b.legal = b.cache.LegalPlies(b.backend, b.toMove)
}

// LegalPlies lists the moves of the side to move in generation order
// (square index ascending, then direction order).
func (b *Board) LegalPlies() []Ply {
	out := make([]Ply, len(b.legal))
	copy(out, b.legal)
	return out
}

// GetPly returns the i-th legal ply; false when i is out of range.
func (b *Board) GetPly(i int) (Ply, bool) {
	if i < 0 || i >= len(b.legal) {
		return Ply{}, false
	}
	return b.legal[i], true
}

// FindPly resolves notation against the current legal plies.
func (b *Board) FindPly(notation string) (Ply, error) {
	text, err := ParsePly(notation)
	if err != nil {
		return Ply{}, err
	}
	for _, p := range b.legal {
		if text.Matches(p) {
			return p, nil
		}
	}
	return Ply{}, fmt.Errorf("%w: %s", ErrPlyNotFound, notation)
}

// PlayNotation looks up notation and applies it.
func (b *Board) PlayNotation(notation string) (Ply, error) {
	p, err := b.FindPly(notation)
	if err != nil {
		return Ply{}, err
	}
	b.Ply(p)
	return p, nil
}

func (b *Board) ToMove() Color { return b.toMove }

func (b *Board) GameState() GameState {
	return b.cache.GameState(b.backend, b.toMove)
}

// Backend exposes the underlying representation for read-only use (search clones it).
func (b *Board) Backend() Backend { return b.backend }

// Select marks sq for highlighting; it is cleared by the next ply.
func (b *Board) Select(sq Square) { b.selected = sq }

func (b *Board) Selected() (Square, bool) {
	return b.selected, b.selected != NoSquare
}
