package checkers

type Outcome int8

const (
	OnGoing Outcome = iota
	Draw
	Win
)

// GameState is derived from the position; Winner is meaningful only for Win.
type GameState struct {
	Outcome Outcome
	winner  Color
}

func OnGoingState() GameState { return GameState{Outcome: OnGoing} }
func DrawState() GameState { return GameState{Outcome: Draw} }
func WinFor(winner Color) GameState { return GameState{Outcome: Win, winner: winner} }

func (g GameState) IsOver() bool { return g.Outcome != OnGoing }
func (g GameState) IsOnGoing() bool { return g.Outcome == OnGoing }
func (g GameState) IsDraw() bool { return g.Outcome == Draw }
func (g GameState) IsWin() bool { return g.Outcome == Win }

func (g GameState) Winner() (Color, bool) {
	if g.Outcome != Win {
		return White, false
	}
	return g.winner, true
}

func (g GameState) String() string {
	switch g.Outcome {
	case Draw:
		return "draw"
	case Win:
		if g.winner == White {
			return "white_wins"
		}
		return "black_wins"
	default:
		return "ongoing"
	}
}
