package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces environment variables, e.g. CLASSICS_LOG_LEVEL.
const envPrefix = "CLASSICS"

// Config is the process configuration. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	Scenario  string `envconfig:"SCENARIO"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// ErrBadScenario is returned for a scenario that cannot be executed.
var ErrBadScenario = errors.New("scenario: invalid")

// Scenario describes one demonstration run.
type Scenario struct {
	Heap  HeapScenario  `yaml:"heap"`
	Graph GraphScenario `yaml:"graph"`
}

// HeapScenario lists values to insert, then indices to remove in order.
type HeapScenario struct {
	Capacity int   `yaml:"capacity"`
	Strict   bool  `yaml:"strict"`
	Insert   []int `yaml:"insert"`
	Remove   []int `yaml:"remove"`
}

// GraphScenario builds a graph from an optional base shape plus explicit
// edges, optionally drops edges, then runs BFS queries.
// Edges and queries are [a, b] pairs.
type GraphScenario struct {
	Vertices int     `yaml:"vertices"`
	Shape    string  `yaml:"shape"`
	Edges    [][]int `yaml:"edges"`
	Remove   [][]int `yaml:"remove"`
	Queries  [][]int `yaml:"queries"`
}

// Empty reports whether the graph section was left out of the scenario.
func (g GraphScenario) Empty() bool {
	return g.Vertices == 0 && g.Shape == "" &&
		len(g.Edges) == 0 && len(g.Remove) == 0 && len(g.Queries) == 0
}

// DefaultScenario reproduces the textbook walkthrough: inserting 1,3,4,6,0
// and removing the root, and BFS across a four-vertex square.
func DefaultScenario() Scenario {
	return Scenario{
		Heap: HeapScenario{
			Capacity: 20,
			Insert:   []int{1, 3, 4, 6, 0},
			Remove:   []int{0},
		},
		Graph: GraphScenario{
			Vertices: 4,
			Edges:    [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
			Queries:  [][]int{{0, 2}, {1, 3}},
		},
	}
}

// LoadScenario returns DefaultScenario for an empty path, otherwise the
// parsed YAML file.
func LoadScenario(path string) (Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return ParseScenario(raw)
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(raw []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate checks pair shapes. Index ranges are left to the data structures,
// which report them as errors during the run.
func (s Scenario) Validate() error {
	groups := map[string][][]int{
		"graph.edges":   s.Graph.Edges,
		"graph.remove":  s.Graph.Remove,
		"graph.queries": s.Graph.Queries,
	}
	for name, pairs := range groups {
		for i, p := range pairs {
			if len(p) != 2 {
				return fmt.Errorf("%w: %s[%d] has %d elements, want 2", ErrBadScenario, name, i, len(p))
			}
		}
	}
	if s.Graph.Vertices < 0 {
		return fmt.Errorf("%w: graph.vertices is negative", ErrBadScenario)
	}
	if s.Graph.Vertices == 0 && !s.Graph.Empty() {
		return fmt.Errorf("%w: graph.vertices must be > 0 when the graph section is set", ErrBadScenario)
	}

	return nil
}
