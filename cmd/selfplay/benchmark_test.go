package main

import (
	"context"
	"sync"
	"testing"

	"shanks/internal/engine"
)

func TestPlayMatchTalliesEveryGame(t *testing.T) {
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{Depth: 2}}
	b := PlayerConfig{Name: "b", Cfg: engine.SearchConfig{Depth: 1}}

	var mu sync.Mutex
	var results []gameResult
	score, err := playMatch(context.Background(), a, b, 4, 2, 60, func(r gameResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("playMatch: %v", err)
	}
	if len(results) != 4 || score.played != 4 {
		t.Fatalf("reported %d games, scored %d", len(results), score.played)
	}
	if score.wins["a"]+score.wins["b"]+score.draws != 4 {
		t.Fatalf("tally does not add up: %+v draws=%d", score.wins, score.draws)
	}
	for _, r := range results {
		if r.Plies != len(r.Record) || r.Plies > 60 {
			t.Errorf("game %d: plies=%d record=%d", r.Game, r.Plies, len(r.Record))
		}
		wantWhite := "a"
		if r.Game%2 == 0 {
			wantWhite = "b"
		}
		if r.White != wantWhite {
			t.Errorf("game %d: white=%s want %s", r.Game, r.White, wantWhite)
		}
	}
}

func TestPlayMatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{Depth: 1}}
	score, err := playMatch(ctx, a, a, 3, 1, 10, nil)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if score.played != 0 {
		t.Fatalf("played %d games after cancel", score.played)
	}
}
