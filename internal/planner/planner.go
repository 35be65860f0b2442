// Package planner implements the session state machine: generating a
// dietary and fitness plan pair from a profile and answering follow-up
// questions against it.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aaronromeo/healthplanner/internal/id"
	"github.com/aaronromeo/healthplanner/internal/llm"
	"github.com/aaronromeo/healthplanner/internal/profile"
)

type Planner struct {
	llm      *llm.Client
	logger   *slog.Logger
	parallel bool
	now      func() time.Time
}

type Option func(*Planner)

func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = l
	}
}

// WithParallel issues the dietary and fitness calls concurrently.
func WithParallel(on bool) Option {
	return func(p *Planner) {
		p.parallel = on
	}
}

func withClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

func New(cli *llm.Client, opts ...Option) *Planner {
	p := &Planner{llm: cli, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GeneratePlans asks both experts for a plan. Either both plans are returned
// or an error wrapping ErrGeneration.
func (p *Planner) GeneratePlans(ctx context.Context, prof profile.Profile) (DietaryPlan, FitnessPlan, error) {
	if p.llm == nil {
		return DietaryPlan{}, FitnessPlan{}, ErrServiceInit
	}
	if err := prof.Validate(); err != nil {
		return DietaryPlan{}, FitnessPlan{}, err
	}

	var meals, routine string
	diet := func(ctx context.Context) error {
		out, err := p.llm.Consult(ctx, llm.DietaryExpert, prof)
		if err != nil {
			return fmt.Errorf("dietary plan: %w", err)
		}
		meals = out
		return nil
	}
	fitness := func(ctx context.Context) error {
		out, err := p.llm.Consult(ctx, llm.FitnessExpert, prof)
		if err != nil {
			return fmt.Errorf("fitness plan: %w", err)
		}
		routine = out
		return nil
	}

	var err error
	if p.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return diet(gctx) })
		g.Go(func() error { return fitness(gctx) })
		err = g.Wait()
	} else {
		err = diet(ctx)
		if err == nil {
			err = fitness(ctx)
		}
	}
	if err != nil {
		return DietaryPlan{}, FitnessPlan{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return dietaryPlan(prof, meals), fitnessPlan(prof, routine), nil
}

// AskQuestion answers a follow-up using the plans held in st. A blank
// question returns ErrEmptyInput without calling the service.
func (p *Planner) AskQuestion(ctx context.Context, question string, st State) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyInput
	}
	if !st.PlansGenerated || st.Dietary == nil || st.Fitness == nil {
		return "", ErrNoPlans
	}
	if p.llm == nil {
		return "", ErrServiceInit
	}
	answer, err := p.llm.Answer(ctx, st.Dietary.MealPlan, st.Fitness.Routine, question)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnswer, err)
	}
	return answer, nil
}

// Generate runs plan generation against st. On success the new plans replace
// the old ones and the history is cleared. On failure st is returned as is.
func (p *Planner) Generate(ctx context.Context, st State, prof profile.Profile) (State, error) {
	d, f, err := p.GeneratePlans(ctx, prof)
	if err != nil {
		p.logger.Warn("plan generation failed", "error", err)
		return st, err
	}
	seed, err := prof.ToJSON()
	if err != nil {
		return st, err
	}
	planID := id.PlanID(p.now().Format("2006-01-02"), string(prof.FitnessGoal), seed)
	p.logger.Info("plans generated", "plan_id", planID, "cleared_questions", len(st.History))
	return st.withPlans(planID, prof, d, f), nil
}

// Ask runs the follow-up flow against st. A successful answer is appended to
// the history; a blank question or a failure leaves st unchanged. Only the
// blank case reports no error.
func (p *Planner) Ask(ctx context.Context, st State, question string) (State, error) {
	answer, err := p.AskQuestion(ctx, question, st)
	if errors.Is(err, ErrEmptyInput) {
		return st, nil
	}
	if err != nil {
		p.logger.Warn("follow-up failed", "plan_id", st.PlanID, "error", err)
		return st, err
	}
	return st.withAnswer(strings.TrimSpace(question), answer), nil
}
