// Package profile holds the user's body metrics and preferences that seed a
// plan generation request.
package profile

import "encoding/json"

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary"
	LightlyActive    ActivityLevel = "Lightly Active"
	ModeratelyActive ActivityLevel = "Moderately Active"
	VeryActive       ActivityLevel = "Very Active"
	ExtremelyActive  ActivityLevel = "Extremely Active"
)

type DietaryPreference string

const (
	Vegetarian DietaryPreference = "Vegetarian"
	Keto       DietaryPreference = "Keto"
	GlutenFree DietaryPreference = "Gluten Free"
	LowCarb    DietaryPreference = "Low Carb"
	DairyFree  DietaryPreference = "Dairy Free"
)

type FitnessGoal string

const (
	LoseWeight       FitnessGoal = "Lose Weight"
	GainMuscle       FitnessGoal = "Gain Muscle"
	Endurance        FitnessGoal = "Endurance"
	StayFit          FitnessGoal = "Stay Fit"
	StrengthTraining FitnessGoal = "Strength Training"
)

// Form bounds, mirrored in schemas/profile-v1.json.
const (
	MinAge      = 10
	MaxAge      = 100
	MinWeightKg = 20.0
	MaxWeightKg = 300.0
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
)

var (
	Sexes              = []Sex{SexMale, SexFemale, SexOther}
	ActivityLevels     = []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}
	DietaryPreferences = []DietaryPreference{Vegetarian, Keto, GlutenFree, LowCarb, DairyFree}
	FitnessGoals       = []FitnessGoal{LoseWeight, GainMuscle, Endurance, StayFit, StrengthTraining}
)

// Profile is an immutable snapshot of the form for one generation request.
// JSON tags follow the snake_case naming of the profile schema.
type Profile struct {
	Age               int               `json:"age" yaml:"age"`
	WeightKg          float64           `json:"weight_kg" yaml:"weight_kg"`
	HeightCm          float64           `json:"height_cm" yaml:"height_cm"`
	Sex               Sex               `json:"sex" yaml:"sex"`
	ActivityLevel     ActivityLevel     `json:"activity_level" yaml:"activity_level"`
	DietaryPreference DietaryPreference `json:"dietary_preference" yaml:"dietary_preference"`
	FitnessGoal       FitnessGoal       `json:"fitness_goal" yaml:"fitness_goal"`
}

// ToJSON marshals the profile to JSON bytes.
func (p Profile) ToJSON() ([]byte, error) { return json.Marshal(p) }

// Validate checks the profile against the profile v1 JSON Schema.
func (p Profile) Validate() error {
	b, err := p.ToJSON()
	if err != nil {
		return err
	}
	return ValidateProfileJSON(b)
}

// FromJSON validates raw request bytes against the schema before decoding,
// so unknown fields and out-of-range values are rejected up front.
func FromJSON(b []byte) (Profile, error) {
	if err := ValidateProfileJSON(b); err != nil {
		return Profile{}, err
	}
	var p Profile
	return p, json.Unmarshal(b, &p)
}
