package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaronromeo/healthplanner/internal/id"
	"github.com/aaronromeo/healthplanner/internal/llm/provider"
	"github.com/aaronromeo/healthplanner/internal/profile"
)

type Client struct {
	provider provider.Provider
	logger   *slog.Logger
	timeout  time.Duration
}

type LLMClientOption func(*Client)

func WithProvider(p provider.Provider) LLMClientOption {
	return func(c *Client) {
		c.provider = p
	}
}

func WithLogger(l *slog.Logger) LLMClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTimeout bounds each completion call. Zero means no client-side bound.
func WithTimeout(d time.Duration) LLMClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(opts ...LLMClientOption) (*Client, error) {
	c := &Client{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		return nil, errors.New("llm provider not configured")
	}
	if err := c.provider.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Consult asks an expert for a plan tailored to the profile.
func (c *Client) Consult(ctx context.Context, e Expert, p profile.Profile) (string, error) {
	return c.complete(ctx, provider.Request{
		Name:         id.Slug(e.Name),
		Instructions: e.SystemInstructions(),
		Prompt:       ProfilePrompt(p),
	})
}

// Answer asks a follow-up question with the two current plans as context.
func (c *Client) Answer(ctx context.Context, mealPlan, routine, question string) (string, error) {
	return c.complete(ctx, provider.Request{
		Name:   "follow-up",
		Prompt: QuestionContext(mealPlan, routine, question),
	})
}

func (c *Client) complete(ctx context.Context, req provider.Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.provider.Complete(ctx, req)
	took := time.Since(start)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("no response within %s: %w", c.timeout, err)
		}
		c.logger.Warn("llm completion failed", "call", req.Name, "took", took, "error", err)
		return "", err
	}
	c.logger.Debug("llm completion", "call", req.Name, "took", took, "prompt_bytes", len(req.Prompt), "reply_bytes", len(out))
	return out, nil
}

// ProfilePrompt renders the profile into the user prompt shared by both experts.
func ProfilePrompt(p profile.Profile) string {
	return fmt.Sprintf(ProfileUser,
		p.Age, formatFloat(p.WeightKg), formatFloat(p.HeightCm), p.Sex,
		p.ActivityLevel, p.DietaryPreference, p.FitnessGoal,
	)
}

// QuestionContext concatenates the meal plan, the routine and the question.
// Nothing is truncated; context limits are the provider's concern.
func QuestionContext(mealPlan, routine, question string) string {
	return fmt.Sprintf(QuestionUser, mealPlan, routine, question)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
