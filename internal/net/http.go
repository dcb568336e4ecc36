package net

import (
	"encoding/json"
	nethttp "net/http"

	ui "ashfall/ui"
	"ashfall/ui/internal/console"
	"ashfall/ui/internal/net/ws"
)

type MuxConfig struct {
	// ClientDir, when set, is served at the root path for the browser shell.
	ClientDir string
}

type diagnosticsPayload struct {
	Viewers      int            `json:"viewers"`
	ActiveScreen string         `json:"activeScreen"`
	Console      []console.Line `json:"console"`
}

// NewMux assembles the HTTP surface: the WebSocket endpoint, a health probe,
// a diagnostics snapshot, and optionally the static client shell.
func NewMux(host *ui.Host, c *console.Console, wsHandler *ws.Handler, cfg MuxConfig) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/ws", wsHandler.Handle)

	mux.HandleFunc("/healthz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		payload := diagnosticsPayload{
			Viewers:      host.ViewerCount(),
			ActiveScreen: host.ActiveScreen(),
			Console:      c.Lines(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			nethttp.Error(w, "encode diagnostics", nethttp.StatusInternalServerError)
		}
	})

	if cfg.ClientDir != "" {
		mux.Handle("/", nethttp.FileServer(nethttp.Dir(cfg.ClientDir)))
	}

	return mux
}
