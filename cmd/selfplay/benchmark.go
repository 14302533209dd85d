package main

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"shanks/internal/checkers"
	"shanks/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

type gameResult struct {
	Game   int
	White  string
	Black  string
	Winner string // player name, or "" for a game stopped at the ply limit
	Plies  int
	Record []string
}

type matchScore struct {
	mu     sync.Mutex
	wins   map[string]int
	draws  int
	plies  int
	played int
}

func (s *matchScore) add(r gameResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Winner == "" {
		s.draws++
	} else {
		s.wins[r.Winner]++
	}
	s.plies += r.Plies
	s.played++
}

// playMatch runs games between a and b, alternating colors, at most parallel at a time.
// report is called once per finished game, possibly from several goroutines.
func playMatch(ctx context.Context, a, b PlayerConfig, games, parallel, maxPlies int, report func(gameResult)) (*matchScore, error) {
	score := &matchScore{wins: map[string]int{a.Name: 0, b.Name: 0}}

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := 0; i < games; i++ {
		i := i // per-iteration copy (go1.21 loop semantics)
		white, black := a, b
		if i%2 == 1 {
			white, black = b, a
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := playGame(white, black, maxPlies)
			r.Game = i + 1
			score.add(r)
			if report != nil {
				report(r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return score, err
	}
	return score, nil
}

// playGame plays one game from the opening; each side gets a fresh engine.
func playGame(white, black PlayerConfig, maxPlies int) gameResult {
	board := checkers.NewDefaultBoard()
	engines := map[checkers.Color]*engine.Engine{
		checkers.White: engine.NewEngine(checkers.White, white.Cfg),
		checkers.Black: engine.NewEngine(checkers.Black, black.Cfg),
	}
	names := map[checkers.Color]string{checkers.White: white.Name, checkers.Black: black.Name}

	r := gameResult{White: white.Name, Black: black.Name}
	for r.Plies < maxPlies {
		if gs := board.GameState(); gs.IsOver() {
			if w, ok := gs.Winner(); ok {
				r.Winner = names[w]
			}
			return r
		}
		e := engines[board.ToMove()]
		res := e.Search(board.Backend(), e.Config().Depth)
		p, ok := res.BestPly()
		if !ok {
			r.Winner = names[board.ToMove().Opposite()]
			return r
		}
		board.Ply(p)
		r.Record = append(r.Record, p.String())
		r.Plies++
	}
	if gs := board.GameState(); gs.IsWin() {
		w, _ := gs.Winner()
		r.Winner = names[w]
	}
	return r
}

func (s *matchScore) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := ""
	for name, w := range s.wins {
		out += fmt.Sprintf("%s: %d\n", name, w)
	}
	out += fmt.Sprintf("Draws (ply limit): %d\n", s.draws)
	if s.played > 0 {
		out += fmt.Sprintf("Average length: %.1f plies\n", float64(s.plies)/float64(s.played))
	}
	return out
}
