package engine

import (
	"gonum.org/v1/gonum/floats"

	"shanks/internal/checkers"
)

const (
	ManValue  = 1.0
	KingValue = 3.0
)

// MaterialWeights multiplies the vector
// [own men, own kings, opponent men, opponent kings].
var MaterialWeights = []float64{ManValue, KingValue, -ManValue, -KingValue}

// StaticEval is the material balance from c's point of view.
func StaticEval(b checkers.Backend, c checkers.Color) float64 {
	opp := c.Opposite()
	counts := []float64{
		float64(b.ManCount(c)),
		float64(b.KingCount(c)),
		float64(b.ManCount(opp)),
		float64(b.KingCount(opp)),
	}
	return floats.Dot(counts, MaterialWeights)
}

// terminalScore maps a finished game onto the score scale of the maximizing color.
func (e *Engine) terminalScore(gs checkers.GameState) float64 {
	if gs.IsDraw() {
		return 0
	}
	if w, ok := gs.Winner(); ok && w == e.maximizing {
		return ScoreInf
	}
	return -ScoreInf
}
