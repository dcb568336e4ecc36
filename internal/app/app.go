// Package app wires the interface server together: configuration from the
// environment, the console pipeline, persistent storage, the event bus, and
// the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	ui "ashfall/ui"
	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
	uinet "ashfall/ui/internal/net"
	"ashfall/ui/internal/net/ws"
	"ashfall/ui/internal/storage"
)

type Config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	DataPath  string `env:"DATA_PATH" envDefault:"data/interface.db"`
	ClientDir string `env:"CLIENT_DIR"`
	Debug     bool   `env:"DEBUG"`
}

func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Run starts the interface server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg Config) error {
	minSeverity := console.SeverityInfo
	if cfg.Debug {
		minSeverity = console.SeverityDebug
	}
	gameConsole := console.New(console.Config{
		MinimumSeverity: minSeverity,
		Sinks:           []console.Sink{console.NewWriterSink(os.Stdout)},
	})

	backend, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open storage at %s: %w", cfg.DataPath, err)
	}
	store := storage.New(backend, gameConsole)
	defer store.Close()

	eventBus := bus.New(gameConsole)
	filter := ui.NewInventoryFilter(eventBus, gameConsole)
	inventory := ui.NewStore(eventBus, store, gameConsole, filter)
	host := ui.NewHost(eventBus, gameConsole, inventory, filter)
	if err := host.Initialize(); err != nil {
		return err
	}
	defer host.Dispose()
	defer inventory.Dispose()

	wsHandler := ws.NewHandler(host, ws.HandlerConfig{Logger: log.Default()})
	mux := uinet.NewMux(host, gameConsole, wsHandler, uinet.MuxConfig{ClientDir: cfg.ClientDir})

	server := &nethttp.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		gameConsole.System("Interface server listening on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return err
	}
}
