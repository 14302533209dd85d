package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"shanks/internal/checkers"
)

func debugCmd(args []string) error {
	fs := newFlagSet("debug")
	fen := fs.String("fen", "", "position to inspect (default: the opening)")
	sel := fs.String("select", "", "square to highlight, e.g. c3")
	fs.Parse(args)

	board, err := boardFromFlag(*fen)
	if err != nil {
		return err
	}
	if *sel != "" {
		sq, err := checkers.ParseSquare(*sel)
		if err != nil {
			return err
		}
		board.Select(sq)
	}
	debugReport(os.Stdout, board)
	return nil
}

func debugReport(w io.Writer, board *checkers.Board) {
	b := board.Backend()
	fmt.Fprintln(w, board)
	fmt.Fprintf(w, "position:   %s\n", board.Encode())
	fmt.Fprintf(w, "to move:    %s\n", board.ToMove())
	fmt.Fprintf(w, "state:      %s\n", board.GameState())
	fmt.Fprintf(w, "state hash: %016x\n", b.StateHash())
	for _, c := range []checkers.Color{checkers.White, checkers.Black} {
		fmt.Fprintf(w, "%-11s %d men, %d kings\n", strings.ToLower(c.String())+":", b.ManCount(c), b.KingCount(c))
	}

	plies := board.LegalPlies()
	fmt.Fprintf(w, "legal plies (%d):\n", len(plies))
	for i, p := range plies {
		fmt.Fprintf(w, "%d: %s\n", i, p)
	}
}
