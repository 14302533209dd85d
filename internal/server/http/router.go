package httpserver

import (
	"net/http"

	"shanks/internal/engine"
)

const (
	defaultMaxDepth    = 10
	defaultSearchDepth = 6
)

type Config struct {
	MaxDepth int                 // upper bound for a requested ai_move depth
	Search   engine.SearchConfig // engine settings for every new game
	WebDir   string              // static assets; empty serves the built-in page
}

func DefaultConfig() Config {
	search := engine.DefaultConfig()
	search.Depth = defaultSearchDepth
	return Config{MaxDepth: defaultMaxDepth, Search: search}
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = defaultMaxDepth
	}
	if c.Search.Depth <= 0 {
		c.Search.Depth = defaultSearchDepth
	}
	if c.Search.Depth > c.MaxDepth {
		c.Search.Depth = c.MaxDepth
	}
	return c
}

// Server mounts the API under /api/ and the static page under /.
type Server struct {
	api *Handler
	mux *http.ServeMux
}

func NewServer(cfg Config) *Server {
	s := &Server{
		api: NewHandler(cfg),
		mux: http.NewServeMux(),
	}
	s.mux.Handle("/api/", s.api)
	RegisterStaticRoutes(s.mux, cfg.WebDir)
	return s
}

func (s *Server) Handler() *Handler { return s.api }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
