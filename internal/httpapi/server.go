package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/aaronromeo/healthplanner/internal/config"
	"github.com/aaronromeo/healthplanner/internal/llm/provider"
	"github.com/aaronromeo/healthplanner/internal/session"
)

// ProviderFactory builds a text-generation provider for one session's API key.
type ProviderFactory func(ctx context.Context, apiKey string) (provider.Provider, error)

type server struct {
	cfg         *config.Config
	logger      *slog.Logger
	sessions    *session.Store
	newProvider ProviderFactory
}

type ServerOption func(*server)

func WithProviderFactory(f ProviderFactory) ServerOption {
	return func(s *server) {
		s.newProvider = f
	}
}

func NewServer(cfg *config.Config, logger *slog.Logger, opts ...ServerOption) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{
		cfg:      cfg,
		logger:   logger,
		sessions: session.NewStore(cfg.SessionMax, cfg.SessionTTL, logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newProvider == nil {
		s.newProvider = defaultProviderFactory(cfg, logger)
	}

	// Plan generation waits on two model calls, so writes get the LLM budget on top.
	app := fiber.New(fiber.Config{DisableStartupMessage: true, ReadTimeout: 30 * time.Second, WriteTimeout: 30*time.Second + 2*cfg.LlmTimeout})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger(logger))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	registerSession(app, s)
	registerPlans(app, s)
	app.Static("/", cfg.WebDir)
	return app
}

func defaultProviderFactory(cfg *config.Config, logger *slog.Logger) ProviderFactory {
	httpClient := provider.NewHTTPClient(cfg.LlmRetries, cfg.LlmTimeout, logger)
	return func(ctx context.Context, apiKey string) (provider.Provider, error) {
		return provider.New(ctx, cfg.LlmProvider,
			provider.WithAPIKey(apiKey),
			provider.WithModel(cfg.LlmModel),
			provider.WithBaseURL(cfg.LlmBaseURL),
			provider.WithHTTPClient(httpClient),
		)
	}
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"took", time.Since(start),
			"request_id", c.Locals("requestid"),
		)
		return err
	}
}
