package planner

import (
	"strings"

	"github.com/aaronromeo/healthplanner/internal/profile"
)

// The model only writes the meal plan and the routine. The surrounding panels
// are fixed text chosen from the profile.

var rationaleByDiet = map[profile.DietaryPreference]string{
	profile.Vegetarian: "Plant proteins from legumes, dairy and eggs, balanced carbohydrates and enough iron and B12 sources to fit a meat-free week.",
	profile.Keto:       "High fat, moderate protein and very low carbohydrate intake to keep the body in ketosis while meeting daily energy needs.",
	profile.GlutenFree: "Naturally gluten-free grains and whole foods with enough fibre to replace wheat, barley and rye.",
	profile.LowCarb:    "Protein and vegetables at every meal with limited starches, keeping blood sugar steady through the day.",
	profile.DairyFree:  "Calcium and protein from fortified plant milks, leafy greens, fish and legumes instead of dairy.",
}

var goalsByFitnessGoal = map[profile.FitnessGoal]string{
	profile.LoseWeight:       "Burn more energy than you take in while keeping muscle, mixing cardio with full-body resistance work.",
	profile.GainMuscle:       "Progressive overload on compound lifts with enough volume and recovery to grow muscle.",
	profile.Endurance:        "Raise aerobic capacity with steady and interval sessions, supported by strength work for durability.",
	profile.StayFit:          "Keep strength, mobility and cardiovascular health with a balanced, sustainable weekly routine.",
	profile.StrengthTraining: "Build maximal strength on the main lifts with low-rep sets, long rests and careful technique.",
}

const defaultRationale = "Balanced macronutrients and an energy intake matched to your activity level."
const defaultGoals = "Build strength, improve endurance and maintain overall fitness."

const considerations = `
- Hydration: drink water steadily through the day
- Electrolytes: watch sodium, potassium and magnesium, especially on restrictive diets
- Fibre: get enough from vegetables, fruit and whole foods
- Portions: adjust amounts to hunger, energy and progress
`

const tips = `
- Track your sessions and progress each week
- Rest at least one day between hard sessions for the same muscles
- Favour good form over heavier loads
- Consistency beats intensity
`

func dietaryPlan(p profile.Profile, mealPlan string) DietaryPlan {
	r, ok := rationaleByDiet[p.DietaryPreference]
	if !ok {
		r = defaultRationale
	}
	return DietaryPlan{Rationale: r, MealPlan: mealPlan, Considerations: bulletLines(considerations)}
}

func fitnessPlan(p profile.Profile, routine string) FitnessPlan {
	g, ok := goalsByFitnessGoal[p.FitnessGoal]
	if !ok {
		g = defaultGoals
	}
	return FitnessPlan{Goals: g, Routine: routine, Tips: bulletLines(tips)}
}

// bulletLines splits a block into trimmed, non-empty lines without their
// leading "- " marker.
func bulletLines(block string) []string {
	out := []string{}
	for _, ln := range strings.Split(block, "\n") {
		ln = strings.TrimSpace(ln)
		ln = strings.TrimSpace(strings.TrimPrefix(ln, "-"))
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}
