package engine

import (
	"testing"

	"shanks/internal/checkers"
)

func TestProbeRespectsBoundsAndDepth(t *testing.T) {
	e := NewEngine(checkers.White, DefaultConfig())

	e.storeTT(1, 3, 5, boundLower)
	if s, ok := e.probeTT(1, 2, 0, 4); !ok || s != 5 {
		t.Fatalf("lower bound above beta: got=%v,%v want 5,true", s, ok)
	}
	if _, ok := e.probeTT(1, 2, 0, 10); ok {
		t.Fatalf("lower bound inside window must not cut")
	}
	if _, ok := e.probeTT(1, 4, 0, 4); ok {
		t.Fatalf("shallower entry must not answer a deeper probe")
	}

	e.storeTT(2, 3, -1, boundUpper)
	if s, ok := e.probeTT(2, 3, 0, 10); !ok || s != -1 {
		t.Fatalf("upper bound below alpha: got=%v,%v want -1,true", s, ok)
	}
	if _, ok := e.probeTT(2, 3, -5, 10); ok {
		t.Fatalf("upper bound inside window must not cut")
	}

	e.storeTT(3, 0, 7, boundExact)
	if s, ok := e.probeTT(3, 0, -ScoreInf, ScoreInf); !ok || s != 7 {
		t.Fatalf("exact: got=%v,%v want 7,true", s, ok)
	}
}

func TestStoreKeepsDeeperEntry(t *testing.T) {
	e := NewEngine(checkers.White, DefaultConfig())
	e.storeTT(9, 5, 1, boundExact)
	e.storeTT(9, 2, 9, boundExact)
	if got := e.tt[9]; got.Depth != 5 || got.Score != 1 {
		t.Fatalf("entry replaced by shallower search: %+v", got)
	}
	e.storeTT(9, 6, 4, boundLower)
	if got := e.tt[9]; got.Depth != 6 || got.Score != 4 || got.Bound != boundLower {
		t.Fatalf("deeper search not stored: %+v", got)
	}
}

func TestTableCapAndDisable(t *testing.T) {
	e := NewEngine(checkers.White, SearchConfig{TTCap: 2})
	e.storeTT(10, 1, 0, boundExact)
	e.storeTT(11, 1, 0, boundExact)
	e.storeTT(12, 1, 0, boundExact)
	if e.TableLen() != 1 {
		t.Fatalf("table not reset at cap: len=%d", e.TableLen())
	}

	off := NewEngine(checkers.White, SearchConfig{TTCap: -1})
	off.storeTT(1, 1, 1, boundExact)
	if off.TableLen() != 0 {
		t.Fatalf("disabled table stored %d entries", off.TableLen())
	}
	if _, ok := off.probeTT(1, 0, -ScoreInf, ScoreInf); ok {
		t.Fatalf("disabled table answered a probe")
	}
}

func TestBoundFor(t *testing.T) {
	cases := []struct {
		score, alpha, beta float64
		want               bound
	}{
		{score: 0, alpha: 0, beta: 5, want: boundUpper},
		{score: 5, alpha: 0, beta: 5, want: boundLower},
		{score: 3, alpha: 0, beta: 5, want: boundExact},
		{score: -ScoreInf, alpha: -ScoreInf, beta: ScoreInf, want: boundUpper},
	}
	for _, c := range cases {
		if got := boundFor(c.score, c.alpha, c.beta); got != c.want {
			t.Errorf("boundFor(%v, %v, %v) = %v want %v", c.score, c.alpha, c.beta, got, c.want)
		}
	}
}

func TestKeyDependsOnMover(t *testing.T) {
	b := checkers.NewBitBoard()
	if ttKey(b, checkers.White) == ttKey(b, checkers.Black) {
		t.Fatalf("side to move not part of the key")
	}
}
