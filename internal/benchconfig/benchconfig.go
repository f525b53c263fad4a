// Package benchconfig loads named growth-policy scenarios from YAML so
// benchmarks can sweep fragment sizes and push counts declaratively instead
// of hard-coding them. It is internal: nothing about SplitVec's public API
// depends on it.
package benchconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one growth-policy configuration to benchmark.
type Scenario struct {
	Name     string `yaml:"name"`
	Policy   string `yaml:"policy"`   // "doubling", "linear", "recursive"
	Exponent uint   `yaml:"exponent"` // only meaningful for "linear"
	Pushes   int    `yaml:"pushes"`
}

// Suite is a named collection of scenarios, the top-level shape of a
// benchconfig YAML file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a Suite from filename, applies defaults to Policy,
// Pushes and (for "linear") Exponent when left zero, and validates the
// result. Name has no default: a scenario without one fails validation.
func Load(filename string) (*Suite, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading benchconfig file %s: %w", filename, err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing benchconfig YAML: %w", err)
	}

	suite.applyDefaults()
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) applyDefaults() {
	for i := range s.Scenarios {
		sc := &s.Scenarios[i]
		if sc.Policy == "" {
			sc.Policy = "doubling"
		}
		if sc.Pushes == 0 {
			sc.Pushes = 1000
		}
		if sc.Policy == "linear" && sc.Exponent == 0 {
			sc.Exponent = 6
		}
	}
}

func (s *Suite) validate() error {
	for _, sc := range s.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("benchconfig: scenario missing name")
		}
		switch sc.Policy {
		case "doubling", "linear", "recursive":
		default:
			return fmt.Errorf("benchconfig: scenario %q: unknown policy %q", sc.Name, sc.Policy)
		}
		if sc.Pushes < 0 {
			return fmt.Errorf("benchconfig: scenario %q: pushes must be >= 0, got %d", sc.Name, sc.Pushes)
		}
	}
	return nil
}
