// server renders a region of the Mandelbrot set on demand and serves it to browsers.
// The page at / opens a websocket on /ws and draws stable points band by band as
// they are classified; /mandelbrot.png serves the finished plot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

func main() {
	addr := flag.String("addr", ":8080", "http listen address")
	configPath := flag.String("config", "", "path to YAML config file")
	bandRows := flag.Int("band", 16, "grid rows per websocket message")
	flag.Parse()

	if err := run(*addr, *configPath, *bandRows); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// serverConfig is the stock plot scaled down to something a browser can take.
func serverConfig() *mandel.Config {
	cfg := mandel.DefaultConfig()
	cfg.Density = 400
	cfg.Output.Width = 1000
	cfg.Output.Height = 1200
	cfg.Output.MarkerRadius = 1
	return cfg
}

func run(addr, configPath string, bandRows int) error {
	cfg := serverConfig()
	if configPath != "" {
		var err error
		cfg, err = mandel.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if bandRows <= 0 {
		return fmt.Errorf("band must be positive, got %d", bandRows)
	}

	ps, err := newPlotServer(cfg, bandRows)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           ps.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer: %w", err)
	}
	log.Printf("server stopped")
	return nil
}
