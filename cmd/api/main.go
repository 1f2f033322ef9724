package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/airport/internal/pkg/logger"
	"github.com/yigit/airport/internal/server"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT or SIGTERM
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
