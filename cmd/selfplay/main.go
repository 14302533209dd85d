package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"time"

	"shanks/internal/engine"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("depth-a", 4, "search depth of player A")
	depthB := flag.Int("depth-b", 2, "search depth of player B")
	parallel := flag.Int("parallel", 4, "games played at the same time")
	maxPlies := flag.Int("max-plies", 200, "plies after which a game counts as drawn")
	verbose := flag.Bool("v", false, "print every game record")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	a := PlayerConfig{
		Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depthA),
		Cfg:  engine.SearchConfig{Depth: *depthA},
	}
	b := PlayerConfig{
		Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depthB),
		Cfg:  engine.SearchConfig{Depth: *depthB},
	}
	if *depthA == *depthB {
		a.Name += " A"
		b.Name += " B"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	score, err := playMatch(ctx, a, b, *games, *parallel, *maxPlies, func(r gameResult) {
		winner := r.Winner
		if winner == "" {
			winner = "nobody (ply limit)"
		}
		log.Printf("game %d: White [%s] vs Black [%s]: %s wins after %d plies", r.Game, r.White, r.Black, winner, r.Plies)
		if *verbose {
			fmt.Println(strings.Join(r.Record, " "))
		}
	})
	if err != nil {
		log.Printf("match interrupted: %v", err)
	}

	fmt.Printf("\n=== Final Score (%v) ===\n", time.Since(start).Round(time.Millisecond))
	fmt.Print(score)
}
