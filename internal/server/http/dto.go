package httpserver

import (
	"shanks/internal/checkers"
	"shanks/internal/engine"
	"shanks/internal/server/game"
)

// PlyDTO is a legal ply as the client sees it; Index is its position in the
// legal list and can be sent back to /api/play.
type PlyDTO struct {
	Index    int      `json:"index"`
	Notation string   `json:"notation"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Captures []string `json:"captures,omitempty"`
	Promoted bool     `json:"promoted,omitempty"`
}

// NewGameRequest may carry a starting position; empty means the standard opening.
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// PlayRequest names the ply either by Index or by Notation; Notation wins when both are set.
type PlayRequest struct {
	GameID   string `json:"game_id"`
	Index    *int   `json:"index,omitempty"`
	Notation string `json:"notation,omitempty"`
}

type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth"` // 0 = server default, capped by Config.MaxDepth
}

// StateResponse is returned by every game endpoint.
type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"` // position codec string
	ToMove     string   `json:"to_move"`  // "white" / "black"
	LegalPlies []PlyDTO `json:"legal_plies"`
	Status     string   `json:"status"` // "ongoing" / "draw" / "white_wins" / "black_wins"
	History    []string `json:"history"`
}

type PlayResponse struct {
	Played PlyDTO `json:"played"`
	StateResponse
}

type AiMoveResponse struct {
	BestPly PlyDTO  `json:"best_ply"`
	Ties    int     `json:"ties"` // number of equally scored root plies
	Score   float64 `json:"score"`
	Depth   int     `json:"depth"`
	Nodes   int64   `json:"nodes"`
	Cuts    int64   `json:"cuts"`
	TimeMs  int64   `json:"time_ms"`
	StateResponse
}

type HealthResponse struct {
	Status string `json:"status"`
	Games  int    `json:"games"`
}

func colorName(c checkers.Color) string {
	if c == checkers.White {
		return "white"
	}
	return "black"
}

func plyToDTO(i int, p checkers.Ply) PlyDTO {
	dto := PlyDTO{
		Index:    i,
		Notation: p.String(),
		From:     p.From().String(),
		To:       p.To().String(),
		Promoted: p.Promoted(),
	}
	for _, sq := range p.Captures() {
		dto.Captures = append(dto.Captures, sq.String())
	}
	return dto
}

func pliesToDTO(ps []checkers.Ply) []PlyDTO {
	out := make([]PlyDTO, len(ps))
	for i, p := range ps {
		out[i] = plyToDTO(i, p)
	}
	return out
}

func snapshotToDTO(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:     s.ID,
		Position:   s.Position,
		ToMove:     colorName(s.ToMove),
		LegalPlies: pliesToDTO(s.Legal),
		Status:     s.State.String(),
		History:    s.History,
	}
}

func searchToDTO(p checkers.Ply, res engine.SearchResult, s game.Snapshot) AiMoveResponse {
	return AiMoveResponse{
		BestPly:       plyToDTO(-1, p),
		Ties:          len(res.BestPlies),
		Score:         res.Score,
		Depth:         res.Depth,
		Nodes:         res.Nodes,
		Cuts:          res.Cuts,
		TimeMs:        res.TimeUsed.Milliseconds(),
		StateResponse: snapshotToDTO(s),
	}
}
