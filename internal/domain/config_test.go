package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDistribution(t *testing.T) {
	tests := []struct {
		in      string
		want    Distribution
		wantErr bool
	}{
		{"normal", Normal, false},
		{"exponential", Exponential, false},
		{"weibull", 0, true},
		{"Normal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDistribution(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				if !errors.Is(err, ErrUnsupportedDistribution) {
					t.Errorf("expected ErrUnsupportedDistribution, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDistributionJSON(t *testing.T) {
	type payload struct {
		Dist Distribution `json:"distribution"`
	}

	data, err := json.Marshal(payload{Dist: Exponential})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"distribution":"exponential"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"distribution":"normal"}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.Dist != Normal {
		t.Errorf("expected Normal, got %v", p.Dist)
	}

	if err := json.Unmarshal([]byte(`{"distribution":"poisson"}`), &p); err == nil {
		t.Error("expected error for unsupported distribution name")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty variable", func(c *Config) { c.Variable = "" }},
		{"no groups", func(c *Config) { c.Groups = nil }},
		{"empty group label", func(c *Config) { c.Groups = []string{"Control", ""} }},
		{"duplicate group label", func(c *Config) { c.Groups = []string{"Control", "Control"} }},
		{"zero samples", func(c *Config) { c.NPerGroup = 0 }},
		{"negative samples", func(c *Config) { c.NPerGroup = -5 }},
		{"negative sd", func(c *Config) { c.SD = -1 }},
		{"negative max_change", func(c *Config) { c.MaxChange = -0.5 }},
		{"unknown distribution", func(c *Config) { c.Distribution = Distribution(42) }},
		{"exponential with zero mean", func(c *Config) { c.Distribution = Exponential; c.Mean = 0 }},
		{"exponential with negative mean", func(c *Config) { c.Distribution = Exponential; c.Mean = -3 }},
		{"unknown id mode", func(c *Config) { c.IDMode = "random" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigValidate_EdgeCases(t *testing.T) {
	// Zero sd is legal for the normal kind: every draw equals the mean.
	cfg := DefaultConfig()
	cfg.SD = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("sd=0 should be valid: %v", err)
	}

	// Negative precision rounds to tens, hundreds, and so on.
	cfg = DefaultConfig()
	cfg.Precision = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("negative precision should be valid: %v", err)
	}

	// A single group means no perturbation ever applies, but is still a
	// legitimate dataset.
	cfg = DefaultConfig()
	cfg.Groups = []string{"Control"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("single group should be valid: %v", err)
	}

	// Negative means are fine for the normal kind.
	cfg = DefaultConfig()
	cfg.Mean = -40
	if err := cfg.Validate(); err != nil {
		t.Errorf("negative mean should be valid for normal: %v", err)
	}
}
