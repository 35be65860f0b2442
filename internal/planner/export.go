package planner

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// ExportYAML renders the plans and the follow-up history for download.
func (s State) ExportYAML() ([]byte, error) {
	if !s.PlansGenerated {
		return nil, ErrNoPlans
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode plans: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportName is the download filename for the current plans.
func (s State) ExportName() string {
	if s.PlanID == "" {
		return "plans.yaml"
	}
	return s.PlanID + ".yaml"
}
