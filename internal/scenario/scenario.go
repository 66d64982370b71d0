package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Cards   []string       `yaml:"cards"`
	Atoms   []AtomSpec     `yaml:"atoms"`
	Plugins []string       `yaml:"plugins"`
	Config  map[string]any `yaml:"config"`
	Post    []SectionSpec  `yaml:"post"`
	Probes  []Probe        `yaml:"probes"`

	// Dir is the directory plugin paths are relative to.
	Dir string `yaml:"-"`
}

// AtomSpec declares an atom plugin that renders Text, or the atom's value
// when Text is empty.
type AtomSpec struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// SectionSpec describes one section: a markup section when Markup is set,
// a card section when Card is set.
type SectionSpec struct {
	Markup  string         `yaml:"markup"`
	Markers []MarkerSpec   `yaml:"markers"`
	Card    string         `yaml:"card"`
	Payload map[string]any `yaml:"payload"`
}

// MarkerSpec describes a text marker, or an atom when Atom is set.
type MarkerSpec struct {
	Text    string         `yaml:"text"`
	Markups []string       `yaml:"markups"`
	Atom    string         `yaml:"atom"`
	Value   string         `yaml:"value"`
	Payload map[string]any `yaml:"payload"`
}

// Endpoint is a native selection endpoint addressed by path.
type Endpoint struct {
	Path   []int `yaml:"path"`
	Offset int   `yaml:"offset"`
}

// Expectation is the expected outcome of a probe. Head and Tail are
// [section, offset] pairs in selection order. When Error is set the probe
// expects resolution to fail.
type Expectation struct {
	Head  []int `yaml:"head"`
	Tail  []int `yaml:"tail"`
	Error bool  `yaml:"error"`
}

// Probe places the native selection and checks the resolved offsets.
type Probe struct {
	Name   string      `yaml:"name"`
	Anchor Endpoint    `yaml:"anchor"`
	Focus  *Endpoint   `yaml:"focus"`
	Expect Expectation `yaml:"expect"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario's structure.
func (s *Scenario) Validate() error {
	for i, sec := range s.Post {
		switch {
		case sec.Markup != "" && sec.Card != "":
			return fmt.Errorf("%w: section %d is both markup and card", ErrInvalidScenario, i)
		case sec.Markup == "" && sec.Card == "":
			return fmt.Errorf("%w: section %d needs markup or card", ErrInvalidScenario, i)
		case sec.Card != "" && len(sec.Markers) > 0:
			return fmt.Errorf("%w: card section %d has markers", ErrInvalidScenario, i)
		}
	}
	for i, p := range s.Probes {
		for _, pair := range [][]int{p.Expect.Head, p.Expect.Tail} {
			if pair != nil && len(pair) != 2 {
				return fmt.Errorf("%w: probe %d (%s): positions are [section, offset]", ErrInvalidScenario, i, p.Name)
			}
		}
		if !p.Expect.Error && p.Expect.Head == nil {
			return fmt.Errorf("%w: probe %d (%s) expects nothing", ErrInvalidScenario, i, p.Name)
		}
	}
	return nil
}
