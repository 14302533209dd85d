package httpserver

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// RegisterStaticRoutes mounts the web client at /. With webDir set, files are
// served from disk; otherwise the built-in single page is used.
func RegisterStaticRoutes(mux *http.ServeMux, webDir string) {
	if mux == nil {
		return
	}
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
		return
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/index.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(indexPage)
		default:
			http.NotFound(w, r)
		}
	})
}
