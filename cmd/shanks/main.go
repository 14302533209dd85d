package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const usage = `usage: shanks <command> [flags]

commands:
  play    play a game in the terminal (optionally against the engine)
  debug   print a position, its legal plies and state
  perft   count leaf nodes of the ply tree
  eval    search a position and report the best plies
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "play":
		err = playCmd(args)
	case "debug":
		err = debugCmd(args)
	case "perft":
		err = perftCmd(args)
	case "eval":
		err = evalCmd(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet("shanks "+name, flag.ExitOnError)
}
