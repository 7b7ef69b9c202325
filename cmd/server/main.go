package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/commentlabeler/config"
	"github.com/spacesedan/commentlabeler/internal/classifier"
	"github.com/spacesedan/commentlabeler/internal/clients"
	"github.com/spacesedan/commentlabeler/internal/logging"
	"github.com/spacesedan/commentlabeler/internal/pipeline"
	"github.com/spacesedan/commentlabeler/internal/sentiment"
	"github.com/spacesedan/commentlabeler/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)
	slog.Info("[Main] Configuration loaded", slog.Any("config", cfg.Redacted()))

	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	labeler, provider, err := newLabeler(context.Background(), cfg)
	if err != nil {
		slog.Error("[Main] Failed to set up labeler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(cfg, pipeline.New(labeler), provider).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Main] Listening", slog.String("addr", srv.Addr), slog.String("provider", provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped unexpectedly", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown", slog.String("error", err.Error()))
	}
}

// newLabeler picks the comment labeler for the configured provider.
func newLabeler(ctx context.Context, cfg config.Config) (pipeline.Labeler, string, error) {
	if cfg.LLMProvider == config.ProviderVADER {
		l := sentiment.NewLabeler()
		return l, l.Name(), nil
	}

	gen, err := clients.NewLLMClient(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	return classifier.New(gen), gen.Name(), nil
}
