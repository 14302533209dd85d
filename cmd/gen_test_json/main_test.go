package main

import (
	"math/rand"
	"testing"

	"shanks/internal/checkers"
)

func TestGeneratePairsStages(t *testing.T) {
	cases := generate(rand.New(rand.NewSource(7)), 2, 20)
	if len(cases) == 0 || len(cases)%2 != 0 {
		t.Fatalf("got %d cases, want a positive even count", len(cases))
	}
	first := cases[0]
	if first.Position != checkers.NewDefaultBoard().Encode() || first.ToMove != "White" {
		t.Fatalf("first case = %s %s", first.Position, first.ToMove)
	}
	if len(first.Legal) != 7 {
		t.Fatalf("opening legal = %v", first.Legal)
	}

	for i := 0; i < len(cases); i += 2 {
		sel, land := cases[i], cases[i+1]
		if sel.Stage != 0 || land.Stage != 1 || sel.Position != land.Position {
			t.Fatalf("case %d: stages out of step", i)
		}
		if sel.Mask[land.From] != 1 {
			t.Errorf("case %d: chosen square %d not selectable", i, land.From)
		}
		n := 0
		for _, v := range land.Mask {
			n += int(v)
		}
		if n == 0 {
			t.Errorf("case %d: no landing squares from %d", i, land.From)
		}
	}
}
