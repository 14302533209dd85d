package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"shanks/internal/checkers"
)

// TestCase is one ply-generation fixture. Stage 0 masks the squares a piece
// can be picked up from; stage 1 masks the landing squares of the piece on From.
type TestCase struct {
	Position string   `json:"position"`
	ToMove   string   `json:"to_move"`
	Stage    int      `json:"stage"`
	From     int      `json:"from"`
	Mask     []int8   `json:"mask"`
	Legal    []string `json:"legal"`
}

func selectMask(plies []checkers.Ply) []int8 {
	mask := make([]int8, checkers.NumSquares)
	for _, p := range plies {
		mask[p.From().Index()] = 1
	}
	return mask
}

func landingMask(plies []checkers.Ply, from checkers.Square) []int8 {
	mask := make([]int8, checkers.NumSquares)
	for _, p := range plies {
		if p.From() == from {
			mask[p.To().Index()] = 1
		}
	}
	return mask
}

func generate(rng *rand.Rand, games, maxPlies int) []TestCase {
	var cases []TestCase
	for g := 0; g < games; g++ {
		board := checkers.NewDefaultBoard()
		for n := 0; n < maxPlies; n++ {
			plies := board.LegalPlies()
			if len(plies) == 0 {
				break
			}
			position := board.Encode()
			legal := make([]string, len(plies))
			for i, p := range plies {
				legal[i] = p.String()
			}

			cases = append(cases, TestCase{
				Position: position,
				ToMove:   board.ToMove().String(),
				Stage:    0,
				From:     -1,
				Mask:     selectMask(plies),
				Legal:    legal,
			})

			chosen := plies[rng.Intn(len(plies))]
			cases = append(cases, TestCase{
				Position: position,
				ToMove:   board.ToMove().String(),
				Stage:    1,
				From:     chosen.From().Index(),
				Mask:     landingMask(plies, chosen.From()),
				Legal:    legal,
			})

			board.Ply(chosen)
		}
	}
	return cases
}

func main() {
	games := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("max-plies", 200, "longest game to sample")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("o", "ply_gen_test_data.json", "output file")
	flag.Parse()

	cases := generate(rand.New(rand.NewSource(*seed)), *games, *maxPlies)

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(cases), *games, *out)
}
