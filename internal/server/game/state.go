package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"shanks/internal/checkers"
	"shanks/internal/engine"
)

var ErrGameOver = errors.New("game is over")

// Game is one board plus the engines that play on it. All access goes through
// its methods, which serialize on mu.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	board     *checkers.Board
	engines   map[checkers.Color]*engine.Engine
	searchCfg engine.SearchConfig
	history   []string
	updatedAt time.Time
}

func newGame(id string, board *checkers.Board, cfg engine.SearchConfig) *Game {
	now := time.Now()
	return &Game{
		ID:        id,
		CreatedAt: now,
		board:     board,
		engines:   make(map[checkers.Color]*engine.Engine, 2),
		searchCfg: cfg,
		updatedAt: now,
	}
}

// Snapshot is a consistent copy of a game's observable state.
type Snapshot struct {
	ID        string
	Position  string
	ToMove    checkers.Color
	Legal     []checkers.Ply
	State     checkers.GameState
	History   []string
	UpdatedAt time.Time
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	history := make([]string, len(g.history))
	copy(history, g.history)
	return Snapshot{
		ID:        g.ID,
		Position:  g.board.Encode(),
		ToMove:    g.board.ToMove(),
		Legal:     g.board.LegalPlies(),
		State:     g.board.GameState(),
		History:   history,
		UpdatedAt: g.updatedAt,
	}
}

func (g *Game) applyLocked(p checkers.Ply) {
	g.board.Ply(p)
	g.history = append(g.history, p.String())
	g.updatedAt = time.Now()
}

// PlayIndex plays the i-th legal ply of the side to move.
func (g *Game) PlayIndex(i int) (checkers.Ply, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.GameState().IsOver() {
		return checkers.Ply{}, Snapshot{}, ErrGameOver
	}
	p, ok := g.board.GetPly(i)
	if !ok {
		return checkers.Ply{}, Snapshot{}, fmt.Errorf("%w: no ply at index %d", checkers.ErrPlyNotFound, i)
	}
	g.applyLocked(p)
	return p, g.snapshotLocked(), nil
}

// PlayNotation plays the legal ply written as notation.
func (g *Game) PlayNotation(notation string) (checkers.Ply, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.GameState().IsOver() {
		return checkers.Ply{}, Snapshot{}, ErrGameOver
	}
	p, err := g.board.FindPly(notation)
	if err != nil {
		return checkers.Ply{}, Snapshot{}, err
	}
	g.applyLocked(p)
	return p, g.snapshotLocked(), nil
}

// AIMove searches for the side to move and plays the first best ply.
// depth <= 0 uses the configured depth.
func (g *Game) AIMove(depth int) (checkers.Ply, engine.SearchResult, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.GameState().IsOver() {
		return checkers.Ply{}, engine.SearchResult{}, Snapshot{}, ErrGameOver
	}
	e := g.engineLocked(g.board.ToMove())
	if depth <= 0 {
		depth = e.Config().Depth
	}
	res := e.Search(g.board.Backend(), depth)
	p, ok := res.BestPly()
	if !ok {
		return checkers.Ply{}, res, Snapshot{}, ErrGameOver
	}
	g.applyLocked(p)
	return p, res, g.snapshotLocked(), nil
}

func (g *Game) engineLocked(c checkers.Color) *engine.Engine {
	e, ok := g.engines[c]
	if !ok {
		e = engine.NewEngine(c, g.searchCfg)
		g.engines[c] = e
	}
	return e
}
