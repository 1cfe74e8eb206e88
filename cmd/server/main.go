package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nomi00700/agno-multi-agent/internal/di"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	cfg := di.Config{
		GroqAPIKey:     envService.MustGet("GROQ_API_KEY"),
		GroqModel:      envService.GetWithDefault("GROQ_MODEL", "qwen/qwen3-32b"),
		GroqBaseURL:    envService.Get("GROQ_BASE_URL"),
		BraveAPIKey:    envService.Get("BRAVE_SEARCH_API_KEY"),
		HTTPAddr:       envService.GetWithDefault("HTTP_ADDR", ":8080"),
		LogLevel:       envService.GetWithDefault("LOG_LEVEL", "info"),
		MaxIterations:  envService.GetInt("MAX_TOOL_ITERATIONS", 6),
		RequestTimeout: time.Duration(envService.GetInt("REQUEST_TIMEOUT_SECONDS", 120)) * time.Second,
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		container.Logger.Info("Signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Server.Shutdown(ctx); err != nil {
			container.Logger.Error("Shutdown failed", "error", err)
		}
	}
}
