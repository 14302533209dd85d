package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"shanks/internal/checkers"
	"shanks/internal/server/game"
)

// Handler serves /api/*. Games live in an in-memory registry; a local server
// playing against a human needs nothing more.
type Handler struct {
	cfg      Config
	games    *game.Manager
	upgrader websocket.Upgrader
}

func NewHandler(cfg Config) *Handler {
	cfg = cfg.withDefaults()
	return &Handler{
		cfg:   cfg,
		games: game.NewManager(cfg.Search),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // local use only
		},
	}
}

// Games exposes the registry, e.g. for tests and embedding.
func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req NewGameRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}
		respond(w, h.newGame)(req)

	case "/api/state":
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req StateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, h.state)(req)

	case "/api/play":
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req PlayRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, h.play)(req)

	case "/api/ai_move":
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req AiMoveRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, h.aiMove)(req)

	case "/api/health":
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		writeJSON(w, HealthResponse{Status: "ok", Games: h.games.Len()})

	case "/api/ws":
		h.WebSocket(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) newGame(req NewGameRequest) (StateResponse, error) {
	var g *game.Game
	if req.Position == "" {
		g = h.games.NewGame()
	} else {
		var err error
		if g, err = h.games.NewGameFrom(req.Position); err != nil {
			return StateResponse{}, err
		}
	}
	return snapshotToDTO(g.Snapshot()), nil
}

func (h *Handler) state(req StateRequest) (StateResponse, error) {
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return StateResponse{}, err
	}
	return snapshotToDTO(g.Snapshot()), nil
}

func (h *Handler) play(req PlayRequest) (PlayResponse, error) {
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return PlayResponse{}, err
	}

	var (
		p     checkers.Ply
		snap  game.Snapshot
		index = -1
	)
	switch {
	case req.Notation != "":
		p, snap, err = g.PlayNotation(req.Notation)
	case req.Index != nil:
		index = *req.Index
		p, snap, err = g.PlayIndex(index)
	default:
		err = errMissingPly
	}
	if err != nil {
		return PlayResponse{}, err
	}
	return PlayResponse{Played: plyToDTO(index, p), StateResponse: snapshotToDTO(snap)}, nil
}

func (h *Handler) aiMove(req AiMoveRequest) (AiMoveResponse, error) {
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return AiMoveResponse{}, err
	}
	depth := req.MaxDepth
	if depth <= 0 {
		depth = h.cfg.Search.Depth
	}
	if depth > h.cfg.MaxDepth {
		depth = h.cfg.MaxDepth
	}

	p, res, snap, err := g.AIMove(depth)
	if err != nil {
		return AiMoveResponse{}, err
	}
	log.Printf("game %s: ai played %s (score %g, depth %d, nodes %d, %v)",
		g.ID, p, res.Score, res.Depth, res.Nodes, res.TimeUsed)
	return searchToDTO(p, res, snap), nil
}

var errMissingPly = errors.New("missing ply: set index or notation")

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, checkers.ErrPlyNotFound),
		errors.Is(err, checkers.ErrInvalidNotation),
		errors.Is(err, checkers.ErrInvalidPosition),
		errors.Is(err, errMissingPly):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond[Req, Resp any](w http.ResponseWriter, fn func(Req) (Resp, error)) func(Req) {
	return func(req Req) {
		resp, err := fn(req)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, resp)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
