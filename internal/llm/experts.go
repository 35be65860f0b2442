package llm

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Expert is a named role with the instructions sent ahead of the user prompt.
type Expert struct {
	Name         string   `yaml:"name"`
	Role         string   `yaml:"role"`
	Instructions []string `yaml:"instructions"`
}

// SystemInstructions returns the ordered role instructions for a completion.
func (e Expert) SystemInstructions() []string {
	out := make([]string, 0, len(e.Instructions)+1)
	out = append(out, fmt.Sprintf("You are the %s. Your role: %s.", e.Name, e.Role))
	return append(out, e.Instructions...)
}

var (
	DietaryExpert Expert
	FitnessExpert Expert
)

func init() {
	var experts struct {
		Dietary Expert `yaml:"dietary"`
		Fitness Expert `yaml:"fitness"`
	}
	if err := yaml.Unmarshal(expertsYAML, &experts); err != nil {
		panic(fmt.Sprintf("llm: parse embedded experts: %v", err))
	}
	DietaryExpert = experts.Dietary
	FitnessExpert = experts.Fitness
}
