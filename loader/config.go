package loader

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corwin-ash/machina"
)

// Config is the optional YAML bounds sidecar: default search bounds and
// trace setting, overridable by explicit CLI flags.
type Config struct {
	MaxDepth   int  `yaml:"max_depth"`
	MaxVisited int  `yaml:"max_visited"`
	Trace      bool `yaml:"trace"`
}

// Bounds converts c into the engine's Bounds type.
func (c Config) Bounds() machina.Bounds {
	return machina.Bounds{MaxDepth: c.MaxDepth, MaxVisited: c.MaxVisited}
}

// LoadConfig reads and parses a YAML bounds sidecar from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &machina.ParseError{Reason: "cannot read config file", Cause: err}
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, &machina.ParseError{Reason: "malformed config YAML", Cause: err}
	}
	return c, nil
}
