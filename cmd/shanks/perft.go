package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"shanks/internal/checkers"
)

func perftCmd(args []string) error {
	fs := newFlagSet("perft")
	depth := fs.Int("depth", 5, "perft depth")
	fen := fs.String("fen", "", "start position (default: the opening)")
	divide := fs.Bool("divide", false, "print the count below each root ply")
	fs.Parse(args)

	board, err := boardFromFlag(*fen)
	if err != nil {
		return err
	}
	runPerft(os.Stdout, board, *depth, *divide)
	return nil
}

func runPerft(w io.Writer, board *checkers.Board, depth int, divide bool) uint64 {
	start := time.Now()
	var nodes uint64
	if divide {
		counts := checkers.PerftDivide(board.Backend(), board.ToMove(), depth)
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %d\n", k, counts[k])
			nodes += counts[k]
		}
		if depth <= 0 {
			nodes = 1
		}
	} else {
		nodes = checkers.Perft(board.Backend(), board.ToMove(), depth)
	}
	elapsed := time.Since(start)
	fmt.Fprintf(w, "perft(%d) = %d in %v\n", depth, nodes, elapsed)
	return nodes
}
