package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"shanks/internal/checkers"
	"shanks/internal/engine"
)

const clearScreen = "\033c"

func playCmd(args []string) error {
	fs := newFlagSet("play")
	ai := fs.String("ai", "none", "engine side: white, black or none")
	depth := fs.Int("depth", engine.DefaultDepth, "engine search depth")
	fen := fs.String("fen", "", "start from this position instead of the opening")
	clearTerm := fs.Bool("clear", true, "clear the terminal between plies")
	fs.Parse(args)

	board, err := boardFromFlag(*fen)
	if err != nil {
		return err
	}

	p := &player{board: board, out: os.Stdout, clear: *clearTerm}
	switch strings.ToLower(*ai) {
	case "white", "w":
		p.ai = engine.NewEngine(checkers.White, engine.SearchConfig{Depth: *depth})
	case "black", "b":
		p.ai = engine.NewEngine(checkers.Black, engine.SearchConfig{Depth: *depth})
	case "none", "":
	default:
		return fmt.Errorf("bad -ai value %q", *ai)
	}
	return p.run(os.Stdin)
}

func boardFromFlag(fen string) (*checkers.Board, error) {
	if fen == "" {
		return checkers.NewDefaultBoard(), nil
	}
	return checkers.DecodeBoard(fen)
}

// player runs the text loop: the human picks plies by index or notation,
// the engine answers for its side.
type player struct {
	board *checkers.Board
	ai    *engine.Engine
	out   io.Writer
	clear bool
}

func (p *player) show() {
	fmt.Fprintln(p.out, p.board)
	gs := p.board.GameState()
	if gs.IsOver() {
		fmt.Fprintf(p.out, "Game over: %s\n", gs)
		return
	}
	fmt.Fprintf(p.out, "%s to move\n", p.board.ToMove())
	fmt.Fprintln(p.out, "Legal plies:")
	for i, ply := range p.board.LegalPlies() {
		fmt.Fprintf(p.out, "%d: %s\n", i, ply)
	}
}

func (p *player) apply(ply checkers.Ply, who string) {
	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	fmt.Fprintf(p.out, "%s ply: %s\n", who, ply)
	p.board.Ply(ply)
}

// engineTurn plays for the engine while it is on move; false once the game is over.
func (p *player) engineTurn() bool {
	for p.ai != nil && p.board.ToMove() == p.ai.Color() && p.board.GameState().IsOnGoing() {
		res := p.ai.Search(p.board.Backend(), p.ai.Config().Depth)
		ply, ok := res.BestPly()
		if !ok {
			return false
		}
		p.apply(ply, fmt.Sprintf("Engine (%g, %d nodes)", res.Score, res.Nodes))
		p.show()
	}
	return p.board.GameState().IsOnGoing()
}

func (p *player) run(in io.Reader) error {
	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	fmt.Fprintln(p.out, "Playing a game of checkers...")
	p.show()

	sc := bufio.NewScanner(in)
	for p.engineTurn() {
		fmt.Fprint(p.out, "Enter a ply index or notation (or 'exit' to quit): ")
		if !sc.Scan() {
			return sc.Err()
		}
		input := strings.TrimSpace(sc.Text())
		switch input {
		case "exit", "quit":
			return nil
		case "":
			continue
		}

		if index, err := strconv.Atoi(input); err == nil {
			ply, ok := p.board.GetPly(index)
			if !ok {
				fmt.Fprintf(p.out, "No ply found at index %d\n", index)
				continue
			}
			p.apply(ply, "Selected")
			p.show()
			continue
		}

		ply, err := p.board.FindPly(input)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %v\n", err)
			continue
		}
		p.apply(ply, "Selected")
		p.show()
	}
	return nil
}
