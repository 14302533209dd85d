package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"shanks/internal/checkers"
	"shanks/internal/engine"
)

func evalCmd(args []string) error {
	fs := newFlagSet("eval")
	fen := fs.String("fen", "", "position to search (default: the opening)")
	depth := fs.Int("depth", engine.DefaultDepth, "search depth")
	workers := fs.Int("workers", 1, "root plies searched in parallel")
	verbose := fs.Bool("v", false, "log every best ply")
	fs.Parse(args)

	board, err := boardFromFlag(*fen)
	if err != nil {
		return err
	}
	e := engine.NewEngine(board.ToMove(), engine.SearchConfig{Depth: *depth, Workers: *workers})
	if *verbose {
		e.Logger = log.New(os.Stderr, "", 0)
	}
	runEval(os.Stdout, board, e)
	return nil
}

func runEval(w io.Writer, board *checkers.Board, e *engine.Engine) engine.SearchResult {
	res := e.Search(board.Backend(), e.Config().Depth)
	fmt.Fprintf(w, "static:  %g\n", engine.StaticEval(board.Backend(), e.Color()))
	fmt.Fprintf(w, "score:   %g (%s, depth %d)\n", res.Score, e.Color(), res.Depth)
	fmt.Fprintf(w, "nodes:   %d, cuts %d, %v\n", res.Nodes, res.Cuts, res.TimeUsed)
	for _, p := range res.BestPlies {
		fmt.Fprintf(w, "best:    %s\n", p)
	}
	return res
}
