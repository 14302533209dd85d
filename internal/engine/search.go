package engine

import (
	"math"
	"sort"
	"sync/atomic"
	"time"

	"shanks/internal/checkers"
)

// ScoreInf stands in for infinity: a won game for the maximizing color.
const ScoreInf = math.MaxFloat64

const DefaultDepth = 8

type SearchConfig struct {
	Depth   int // plies below the root searched by Evaluate
	TTCap   int // transposition entries kept before the table is reset; 0 = default, < 0 = off
	Workers int // root children searched in parallel; <= 1 searches sequentially
}

func DefaultConfig() SearchConfig {
	return SearchConfig{Depth: DefaultDepth, TTCap: defaultTTCap, Workers: 1}
}

func (c SearchConfig) withDefaults() SearchConfig {
	if c.Depth < 0 {
		c.Depth = 0
	}
	if c.TTCap == 0 {
		c.TTCap = defaultTTCap
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

type SearchResult struct {
	Score     float64        // from the engine color's point of view
	BestPlies []checkers.Ply // every root ply reaching Score, in generation order
	Depth     int            // depth searched
	Nodes     int64          // alpha-beta nodes visited
	Cuts      int64          // beta cutoffs
	TimeUsed  time.Duration
}

// BestPly is the first of the equally scored best plies.
func (r SearchResult) BestPly() (checkers.Ply, bool) {
	if len(r.BestPlies) == 0 {
		return checkers.Ply{}, false
	}
	return r.BestPlies[0], true
}

// Evaluate scores the board's position by a search of the configured depth.
func (e *Engine) Evaluate(board *checkers.Board) float64 {
	return e.Search(board.Backend(), e.cfg.Depth).Score
}

// Search scores every legal ply of the engine's color on b and keeps the best.
// The engine's color is always the mover at the root, whichever side the caller
// thinks is to move. With no legal ply the score is -ScoreInf.
func (e *Engine) Search(b checkers.Backend, depth int) SearchResult {
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)
	atomic.StoreInt64(&e.cuts, 0)

	if depth <= 0 {
		return SearchResult{
			Score:    StaticEval(b, e.maximizing),
			TimeUsed: time.Since(start),
		}
	}

	plies := e.plies.LegalPlies(b, e.maximizing)
	scores := e.searchRoot(b, plies, depth)

	best := -ScoreInf
	var bestPlies []checkers.Ply
	for i, score := range scores {
		switch {
		case bestPlies == nil || score > best:
			best = score
			bestPlies = []checkers.Ply{plies[i]}
		case score == best:
			bestPlies = append(bestPlies, plies[i])
		}
	}

	if len(bestPlies) > 0 {
		e.storeTT(ttKey(b, e.maximizing), depth, best, boundExact)
	}
	if e.Logger != nil {
		for _, p := range bestPlies {
			e.Logger.Printf("best ply: %s ~ %g", p, best)
		}
	}

	return SearchResult{
		Score:     best,
		BestPlies: bestPlies,
		Depth:     depth,
		Nodes:     atomic.LoadInt64(&e.nodes),
		Cuts:      atomic.LoadInt64(&e.cuts),
		TimeUsed:  time.Since(start),
	}
}

// searchRoot scores each root child with a full window, so equal scores are
// real ties. Scores come back in ply order.
func (e *Engine) searchRoot(b checkers.Backend, plies []checkers.Ply, depth int) []float64 {
	children := make([]checkers.Backend, len(plies))
	for i, p := range plies {
		children[i] = b.Clone()
		children[i].Ply(p)
	}
	scores := make([]float64, len(children))

	if e.cfg.Workers <= 1 || len(children) <= 1 {
		for i, child := range children {
			scores[i] = e.alphaBeta(child, depth-1, -ScoreInf, ScoreInf, false)
		}
		return scores
	}

	type rootResult struct {
		idx   int
		score float64
	}
	results := make(chan rootResult, len(children))
	sem := make(chan struct{}, e.cfg.Workers)

	for i, child := range children {
		i, child := i, child // per-iteration copy (go1.21 loop semantics)
		go func() {
			sem <- struct{}{}
			defer func() { <-sem }()

			// each goroutine owns its engine, so the maps need no lock
			local := e.worker()
			score := local.alphaBeta(child, depth-1, -ScoreInf, ScoreInf, false)
			atomic.AddInt64(&e.nodes, local.nodes)
			atomic.AddInt64(&e.cuts, local.cuts)
			results <- rootResult{idx: i, score: score}
		}()
	}
	for range children {
		r := <-results
		scores[r.idx] = r.score
	}
	return scores
}

func (e *Engine) alphaBeta(b checkers.Backend, depth int, alpha, beta float64, maximizing bool) float64 {
	e.nodes++

	mover := e.mover(maximizing)
	key := ttKey(b, mover)
	if score, ok := e.probeTT(key, depth, alpha, beta); ok {
		return score
	}

	gs := e.plies.GameState(b, mover)
	if gs.IsOver() {
		score := e.terminalScore(gs)
		e.storeTT(key, terminalDepth, score, boundExact)
		return score
	}
	if depth <= 0 {
		score := StaticEval(b, e.maximizing)
		e.storeTT(key, 0, score, boundExact)
		return score
	}

	alphaOrig, betaOrig := alpha, beta
	plies := orderPlies(e.plies.LegalPlies(b, mover))

	best := ScoreInf
	if maximizing {
		best = -ScoreInf
	}
	for _, p := range plies {
		child := b.Clone()
		child.Ply(p)
		score := e.alphaBeta(child, depth-1, alpha, beta, !maximizing)

		if maximizing {
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
		} else {
			best = math.Min(best, score)
			beta = math.Min(beta, score)
		}
		if beta <= alpha {
			e.cuts++
			break
		}
	}

	e.storeTT(key, depth, best, boundFor(best, alphaOrig, betaOrig))
	return best
}

// orderPlies copies plies and moves the longest capture chains and crowning
// plies to the front; generation order is kept otherwise.
func orderPlies(plies []checkers.Ply) []checkers.Ply {
	out := make([]checkers.Ply, len(plies))
	copy(out, plies)
	weight := func(p checkers.Ply) int {
		w := 2 * len(p.Captures())
		if p.Promoted() {
			w++
		}
		return w
	}
	sort.SliceStable(out, func(i, j int) bool {
		return weight(out[i]) > weight(out[j])
	})
	return out
}
