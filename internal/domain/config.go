package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Distribution identifies the sampling distribution for a dataset.
type Distribution int

const (
	// Normal draws from a Gaussian with the configured mean and standard deviation.
	Normal Distribution = iota
	// Exponential draws from an exponential distribution whose scale equals the
	// configured mean. The spread parameter is ignored for this kind.
	Exponential
)

// ErrUnsupportedDistribution reports a distribution kind outside the supported set.
var ErrUnsupportedDistribution = errors.New("unsupported distribution")

// ParseDistribution converts a distribution name into its enum value.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "exponential":
		return Exponential, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDistribution, s)
	}
}

func (d Distribution) String() string {
	switch d {
	case Normal:
		return "normal"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("distribution(%d)", int(d))
	}
}

// MarshalJSON encodes the distribution as its CLI name.
func (d Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a CLI distribution name.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDistribution(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IDMode selects how observation identifiers are generated.
type IDMode string

const (
	// IDToken produces fixed-width random tokens from the run's random source.
	IDToken IDMode = "token"
	// IDSequential produces zero-padded sequential identifiers.
	IDSequential IDMode = "sequential"
)

// Config holds every parameter for one dataset generation run. It is built
// once from CLI or scenario input and read-only afterwards.
type Config struct {
	Variable     string       `json:"variable"`
	Groups       []string     `json:"groups"`
	NPerGroup    int          `json:"n_per_group"`
	Distribution Distribution `json:"distribution"`
	Significant  bool         `json:"significant"`
	Mean         float64      `json:"mean"`
	SD           float64      `json:"sd"`
	MaxChange    float64      `json:"max_change"`
	Precision    int          `json:"precision"`
	Seed         uint64       `json:"seed"`
	IDMode       IDMode       `json:"ids"`
	Output       string       `json:"output"`
	Plot         bool         `json:"plot"`
	PlotFile     string       `json:"plot_file"`
}

// DefaultConfig returns the generation defaults shared by the CLI flags and
// scenario files.
func DefaultConfig() Config {
	return Config{
		Variable:     "Measurement",
		Groups:       []string{"Control", "Treatment"},
		NPerGroup:    50,
		Distribution: Normal,
		Significant:  true,
		Mean:         100.0,
		SD:           15.0,
		MaxChange:    5.0,
		Precision:    2,
		IDMode:       IDToken,
		Output:       "dataset.csv",
		PlotFile:     "boxplot.png",
	}
}

// Validate checks the structural constraints a config must satisfy before any
// sampling begins. Failures here are fatal to the whole run.
func (c Config) Validate() error {
	if c.Variable == "" {
		return errors.New("variable name must not be empty")
	}
	if len(c.Groups) == 0 {
		return errors.New("at least one group is required")
	}
	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if g == "" {
			return errors.New("group labels must not be empty")
		}
		if seen[g] {
			return fmt.Errorf("duplicate group label %q", g)
		}
		seen[g] = true
	}
	if c.NPerGroup < 1 {
		return fmt.Errorf("n_per_group must be at least 1, got %d", c.NPerGroup)
	}
	if c.SD < 0 {
		return fmt.Errorf("sd must not be negative, got %v", c.SD)
	}
	if c.MaxChange < 0 {
		return fmt.Errorf("max_change must not be negative, got %v", c.MaxChange)
	}
	switch c.Distribution {
	case Normal:
	case Exponential:
		if c.Mean <= 0 {
			return fmt.Errorf("exponential distribution requires a positive mean, got %v", c.Mean)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDistribution, c.Distribution.String())
	}
	switch c.IDMode {
	case IDToken, IDSequential:
	default:
		return fmt.Errorf("unknown id mode %q (use token or sequential)", c.IDMode)
	}
	return nil
}
