package engine

import (
	"log"

	"shanks/internal/checkers"
)

// Engine searches for the color it was created for. It is not safe for
// concurrent use; the parallel root search gives each worker its own Engine.
type Engine struct {
	maximizing checkers.Color
	cfg        SearchConfig

	tt    map[uint64]ttEntry
	plies *checkers.PlyCache

	nodes int64
	cuts  int64

	// Logger receives the best plies of every root search. Nil disables it.
	Logger *log.Logger
}

func NewEngine(maximizing checkers.Color, cfg SearchConfig) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		maximizing: maximizing,
		cfg:        cfg,
		tt:         make(map[uint64]ttEntry, ttInitialSize),
		plies:      checkers.NewPlyCache(),
	}
}

// worker returns a fresh engine for one root child: same color and limits,
// private table and ply cache.
func (e *Engine) worker() *Engine {
	return &Engine{
		maximizing: e.maximizing,
		cfg:        e.cfg,
		tt:         make(map[uint64]ttEntry, 1<<12),
		plies:      checkers.NewPlyCache(),
	}
}

func (e *Engine) Color() checkers.Color { return e.maximizing }

func (e *Engine) Config() SearchConfig { return e.cfg }

// Reset drops everything learned so far; call it between games.
func (e *Engine) Reset() {
	e.tt = make(map[uint64]ttEntry, ttInitialSize)
	e.plies.Invalidate()
	e.nodes = 0
	e.cuts = 0
}

// TableLen reports the number of transposition entries currently held.
func (e *Engine) TableLen() int { return len(e.tt) }

func (e *Engine) mover(maximizing bool) checkers.Color {
	if maximizing {
		return e.maximizing
	}
	return e.maximizing.Opposite()
}
