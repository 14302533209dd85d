package checkers

import (
	"math/rand"
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, pos string) *Board {
	t.Helper()
	b, err := DecodeBoard(pos)
	if err != nil {
		t.Fatalf("decode %q failed: %v", pos, err)
	}
	return b
}

func plyStrings(plies []Ply) []string {
	out := make([]string, len(plies))
	for i, p := range plies {
		out[i] = p.String()
	}
	return out
}

func TestInitialPositionPlies(t *testing.T) {
	b := NewDefaultBoard()
	got := plyStrings(b.LegalPlies())
	want := []string{"a3-b4", "c3-b4", "c3-d4", "e3-d4", "e3-f4", "g3-f4", "g3-h4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("initial plies: got=%v want=%v", got, want)
	}
	for _, p := range b.LegalPlies() {
		if p.IsCapture() || p.Promoted() {
			t.Fatalf("unexpected capture/promotion in opening: %s", p)
		}
	}

	black := NewBitBoard().LegalPlies(Black)
	if len(black) != 7 {
		t.Fatalf("black opening plies: got=%d want=7 (%v)", len(black), plyStrings(black))
	}
}

func TestPerftFromStart(t *testing.T) {
	want := []uint64{1, 7, 49, 302}
	for depth, n := range want {
		if got := Perft(NewBitBoard(), White, depth); got != n {
			t.Errorf("perft(%d): got=%d want=%d", depth, got, n)
		}
	}

	div := PerftDivide(NewBitBoard(), White, 2)
	if len(div) != 7 {
		t.Fatalf("divide roots: got=%d want=7", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 49 {
		t.Fatalf("divide sum: got=%d want=49", sum)
	}
}

func TestDoubleJumpReportsOnlyFullChain(t *testing.T) {
	// White c3; Black d4 and f6: c3xd4 lands e5, from where f6 must be taken too.
	b := mustDecode(t, "8/8/5m2/8/3m4/2M5/8/8 w")
	plies := b.LegalPlies()
	if got, want := plyStrings(plies), []string{"c3-g7xd4xf6"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
	if got, want := plies[0].Captures(), []Square{D4, F6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("captures: got=%v want=%v", got, want)
	}
}

func TestChainBranchesAtEachContinuation(t *testing.T) {
	// after c3xd4 the man on e5 may continue over d6 or over f6
	b := mustDecode(t, "8/8/3m1m2/8/3m4/2M5/8/8 w")
	got := plyStrings(b.LegalPlies())
	want := []string{"c3-c7xd4xd6", "c3-g7xd4xf6"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
}

func TestMandatoryCaptureAcrossBoard(t *testing.T) {
	// a3 could step to b4, but e3 can take f4
	b := mustDecode(t, "8/8/8/8/5m2/M3M3/8/8 w")
	if got, want := plyStrings(b.LegalPlies()), []string{"e3-g5xf4"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
}

func TestBlackCapturesDownward(t *testing.T) {
	b := mustDecode(t, "8/8/5m2/4M3/8/8/8/8 b")
	if got, want := plyStrings(b.LegalPlies()), []string{"f6-d4xe5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
}

func TestPromotionByStep(t *testing.T) {
	b := mustDecode(t, "8/6M1/8/8/8/8/8/m7 w")
	plies := b.LegalPlies()
	if got, want := plyStrings(plies), []string{"g7-f8p", "g7-h8p"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
	for _, p := range plies {
		if !p.Promoted() || p.Piece() != WhiteKing {
			t.Fatalf("%s should crown: promoted=%v piece=%v", p, p.Promoted(), p.Piece())
		}
	}

	b.Ply(plies[0])
	if pc, ok := b.Backend().Piece(F8); !ok || pc != WhiteKing {
		t.Fatalf("f8 after promotion: got=%v,%v want=White King", pc, ok)
	}
	if b.Backend().KingCount(White) != 1 || b.Backend().ManCount(White) != 0 {
		t.Fatalf("counts after promotion: kings=%d men=%d", b.Backend().KingCount(White), b.Backend().ManCount(White))
	}
}

func TestCrownedManKeepsJumpingAsKing(t *testing.T) {
	// d6xe7 crowns on f8; the new king then takes g7 backwards
	b := mustDecode(t, "8/4m1m1/3M4/8/8/8/8/8 w")
	plies := b.LegalPlies()
	if got, want := plyStrings(plies), []string{"d6-h6pxe7xg7"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("plies: got=%v want=%v", got, want)
	}
	if !plies[0].Promoted() || plies[0].Piece() != WhiteKing {
		t.Fatalf("chain should end crowned: %+v", plies[0])
	}
}

func TestKingMovesBothWays(t *testing.T) {
	b := mustDecode(t, "8/8/8/4K3/8/8/8/m7 w")
	got := plyStrings(b.LegalPlies())
	want := []string{"e5-d6", "e5-f6", "e5-d4", "e5-f4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("king plies: got=%v want=%v", got, want)
	}
	for _, p := range b.LegalPlies() {
		if p.Promoted() {
			t.Fatalf("king ply %s must not be marked promoted", p)
		}
	}
}

func TestBlockedPiecesYieldNothing(t *testing.T) {
	// a White man on the last rank has no forward square
	b := mustDecode(t, "1M6/8/8/8/8/8/8/8 w")
	if n := len(b.LegalPlies()); n != 0 {
		t.Fatalf("white plies: got=%d want=0", n)
	}
	// capture landing off the board is not a capture
	b = mustDecode(t, "1m6/M7/8/8/8/8/8/8 w")
	if n := len(b.LegalPlies()); n != 0 {
		t.Fatalf("plies with landing off-board: got=%d want=0 (%v)", n, plyStrings(b.LegalPlies()))
	}
	// capture landing occupied is not a capture
	b = mustDecode(t, "8/8/8/8/8/2m5/1m6/M7 w")
	if n := len(b.LegalPlies()); n != 0 {
		t.Fatalf("plies with landing occupied: got=%d want=0 (%v)", n, plyStrings(b.LegalPlies()))
	}
}

// checkChain replays p jump by jump on a copy of bb.
func checkChain(t *testing.T, bb *BitBoard, c Color, p Ply) {
	t.Helper()
	sim := *bb
	sim.RemovePiece(p.From())
	cur := p.From()
	for _, jumped := range p.Captures() {
		df, dr := jumped.File()-cur.File(), jumped.Rank()-cur.Rank()
		if (df != 1 && df != -1) || (dr != 1 && dr != -1) {
			t.Fatalf("%s: %s is not adjacent to %s", p, jumped, cur)
		}
		victim, ok := sim.Piece(jumped)
		if !ok || victim.Color == c {
			t.Fatalf("%s: no enemy on %s", p, jumped)
		}
		landing, ok := jumped.MovedBy(df, dr)
		if !ok {
			t.Fatalf("%s: jump over %s leaves the board", p, jumped)
		}
		if _, occupied := sim.Piece(landing); occupied {
			t.Fatalf("%s: landing %s occupied", p, landing)
		}
		sim.RemovePiece(jumped)
		cur = landing
	}
	if cur != p.To() {
		t.Fatalf("%s: chain ends on %s, ply says %s", p, cur, p.To())
	}

	after := *bb
	after.Ply(p)
	if _, more := after.pliesFrom(p.To(), c, true); len(more) != 0 {
		t.Fatalf("%s: chain stops although %v remain", p, plyStrings(more))
	}
}

func TestRandomPlayoutsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(0xC0DE))
	for game := 0; game < 40; game++ {
		b := NewDefaultBoard()
		for ply := 0; ply < 200 && b.GameState().IsOnGoing(); ply++ {
			bb := b.Backend().(*BitBoard)
			if err := bb.Validate(); err != nil {
				t.Fatalf("game %d ply %d: %v", game, ply, err)
			}

			plies := b.LegalPlies()
			again := bb.LegalPlies(b.ToMove())
			if !reflect.DeepEqual(plyStrings(plies), plyStrings(again)) {
				t.Fatalf("game %d ply %d: generation not repeatable", game, ply)
			}

			anyCapture := false
			for _, p := range plies {
				anyCapture = anyCapture || p.IsCapture()
			}
			for _, p := range plies {
				if anyCapture && !p.IsCapture() {
					t.Fatalf("game %d ply %d: quiet ply %s alongside captures", game, ply, p)
				}
				if p.IsCapture() {
					checkChain(t, bb, b.ToMove(), p)
				}
				if p.Promoted() && !p.Piece().IsKing() {
					t.Fatalf("%s promoted but piece is %v", p, p.Piece())
				}
			}

			b.Ply(plies[rng.Intn(len(plies))])
		}
	}
}

func BenchmarkPerft4(b *testing.B) {
	board := NewBitBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, White, 4)
	}
}

func BenchmarkLegalPliesOpening(b *testing.B) {
	board := NewBitBoard()
	for i := 0; i < b.N; i++ {
		board.LegalPlies(White)
	}
}
