package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	httpserver "shanks/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have no browser; ignore
}

func main() {
	defaults := httpserver.DefaultConfig()
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with a custom web client (default: built-in page)")
	depth := flag.Int("depth", defaults.Search.Depth, "default engine depth for ai_move")
	maxDepth := flag.Int("max-depth", defaults.MaxDepth, "largest depth a client may request")
	workers := flag.Int("workers", 1, "root plies searched in parallel")
	browser := flag.Bool("browser", true, "open the default browser")
	flag.Parse()

	cfg := defaults
	cfg.WebDir = *webDir
	cfg.MaxDepth = *maxDepth
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers

	srv := httpserver.NewServer(cfg)
	log.Printf("listening on %s (depth %d, max %d)", *addr, *depth, *maxDepth)

	if *browser {
		// give ListenAndServe a moment before the browser connects
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
