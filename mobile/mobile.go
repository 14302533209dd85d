package mobile

import (
	"log"
	"net/http"

	httpserver "shanks/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// webDir: extracted web assets, or "" for the built-in page
// depth: default engine depth, <= 0 for the server default
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, depth int, port string) {
	cfg := httpserver.DefaultConfig()
	cfg.WebDir = webDir
	if depth > 0 {
		cfg.Search.Depth = depth
	}
	srv := httpserver.NewServer(cfg)

	// must not block the caller's UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("server error: %v", err)
		}
	}()
}
