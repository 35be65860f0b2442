package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/aaronromeo/healthplanner/internal/config"
	"github.com/aaronromeo/healthplanner/internal/httpapi"
)

// shutdownGrace bounds how long in-flight plan generations may run after a
// stop signal.
const shutdownGrace = 15 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	programLevel := slog.LevelInfo
	if cfg.Debug {
		programLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is done, then drains open requests. Sessions are in
// memory only, so nothing else needs flushing.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	app := httpapi.NewServer(cfg, logger)
	logger.Info("listening", "addr", ln.Addr().String(), "llm_provider", cfg.LlmProvider, "parallel", cfg.LlmParallel)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Listener(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "grace", shutdownGrace)
	shutdownErr := app.ShutdownWithTimeout(shutdownGrace)
	_ = ln.Close()
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return shutdownErr
}
