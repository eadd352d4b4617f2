package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Project-Sylos/Mirage/internal/api"
	"github.com/Project-Sylos/Mirage/sdk"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Optional .env file with MIRAGE_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Fatalf("Failed to load .env: %v", err)
	}

	configPath := getConfigPath()

	m, err := sdk.New(configPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize Mirage: %v", err)
	}

	e := m.Engine()
	log := e.Logger()
	cfg := m.GetConfig()
	log.WithFields(logrus.Fields{
		"config": configPath,
		"host":   cfg.API.Host,
		"port":   cfg.API.Port,
	}).Info("Mirage API server")

	server := api.NewServer(e.Sessions(), cfg, log)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sigChan
		log.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			log.Errorf("Error shutting down HTTP server: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		m.Close()
		log.Fatalf("Server error: %v", err)
	}
	<-done

	if err := m.Close(); err != nil {
		log.Errorf("Error closing session store: %v", err)
	}
	log.Info("Server shutdown complete")
}

// getConfigPath returns the configuration file path; empty means defaults
func getConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv("MIRAGE_CONFIG")
}
