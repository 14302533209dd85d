package engine

import (
	"math"

	"shanks/internal/checkers"
)

const (
	defaultTTCap  = 1_000_000
	ttInitialSize = 1 << 16

	// terminal positions score the same at any remaining depth
	terminalDepth = math.MaxInt32
)

type bound uint8

const (
	boundExact bound = iota
	boundLower       // true score >= Score
	boundUpper       // true score <= Score
)

type ttEntry struct {
	Depth int
	Score float64
	Bound bound
}

// ttKey mixes the side to move into the placement hash; the same placement
// with the other side to move is a different search node.
func ttKey(b checkers.Backend, mover checkers.Color) uint64 {
	return b.StateHash() ^ checkers.SideKey(mover)
}

// probeTT returns a stored score when it was searched at least depth deep and
// its bound settles the (alpha, beta) window.
func (e *Engine) probeTT(key uint64, depth int, alpha, beta float64) (float64, bool) {
	if e.cfg.TTCap < 0 {
		return 0, false
	}
	entry, ok := e.tt[key]
	if !ok || entry.Depth < depth {
		return 0, false
	}
	switch entry.Bound {
	case boundExact:
		return entry.Score, true
	case boundLower:
		if entry.Score >= beta {
			return entry.Score, true
		}
	case boundUpper:
		if entry.Score <= alpha {
			return entry.Score, true
		}
	}
	return 0, false
}

// storeTT keeps the deeper entry on collision and starts over once the table
// reaches its cap.
func (e *Engine) storeTT(key uint64, depth int, score float64, b bound) {
	if e.cfg.TTCap < 0 {
		return
	}
	if len(e.tt) >= e.cfg.TTCap {
		e.tt = make(map[uint64]ttEntry, ttInitialSize)
	}
	old, ok := e.tt[key]
	if !ok || depth >= old.Depth {
		e.tt[key] = ttEntry{Depth: depth, Score: score, Bound: b}
	}
}

// boundFor classifies a finished node's score against the window it was searched with.
func boundFor(score, alphaOrig, betaOrig float64) bound {
	switch {
	case score <= alphaOrig:
		return boundUpper
	case score >= betaOrig:
		return boundLower
	default:
		return boundExact
	}
}
