// cmd/mealie-mcp/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/logging"
	"github.com/mdlopresti/mealie-mcp-sub000/internal/server"
)

var (
	transport = flag.String("transport", "http", "Transport mode: http")
	port      = flag.Int("port", 8012, "Port for HTTP transport")
	host      = flag.String("host", "0.0.0.0", "Host address")
	address   = flag.String("address", "", "Address (alias for host)")
	version   = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("mealie-mcp version %s\n", server.Version)
		os.Exit(0)
	}

	logging.Setup()

	// Use address if provided, otherwise use host
	hostAddr := *host
	if *address != "" {
		hostAddr = *address
	}

	config := &server.Config{
		Transport: *transport,
		Host:      hostAddr,
		Port:      *port,
	}

	srv, err := server.NewMealieServer(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	cancel()
	if err := srv.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
