package planner

import (
	"slices"

	"github.com/aaronromeo/healthplanner/internal/profile"
)

type DietaryPlan struct {
	Rationale      string   `json:"rationale" yaml:"rationale"`
	MealPlan       string   `json:"meal_plan" yaml:"meal_plan"`
	Considerations []string `json:"considerations" yaml:"considerations"`
}

type FitnessPlan struct {
	Goals   string   `json:"goals" yaml:"goals"`
	Routine string   `json:"routine" yaml:"routine"`
	Tips    []string `json:"tips" yaml:"tips"`
}

type QAPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// State is one session's view of its plans and follow-up history.
// It is a value: transitions return a new State and never modify the
// receiver's history backing array, so older snapshots stay valid.
type State struct {
	PlanID         string           `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	Profile        *profile.Profile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Dietary        *DietaryPlan     `json:"dietary_plan,omitempty" yaml:"dietary_plan,omitempty"`
	Fitness        *FitnessPlan     `json:"fitness_plan,omitempty" yaml:"fitness_plan,omitempty"`
	PlansGenerated bool             `json:"plans_generated" yaml:"plans_generated"`
	History        []QAPair         `json:"qa_history" yaml:"qa_history"`
}

// NewState returns the empty state of a freshly opened session.
func NewState() State {
	return State{History: []QAPair{}}
}

// withPlans commits a plan pair and truncates the history.
func (s State) withPlans(planID string, p profile.Profile, d DietaryPlan, f FitnessPlan) State {
	return State{
		PlanID:         planID,
		Profile:        &p,
		Dietary:        &d,
		Fitness:        &f,
		PlansGenerated: true,
		History:        []QAPair{},
	}
}

// withAnswer appends one pair at the end of a copy of the history.
func (s State) withAnswer(q, a string) State {
	next := s
	next.History = append(slices.Clip(s.History), QAPair{Question: q, Answer: a})
	return next
}
