package optimize

import "fmt"

// Config holds the tuning knobs shared by all four passes (spec.md §3.3).
// It is a validated record: range checks and cross-field constraints run
// once at construction via Validate, so the pipeline itself never needs to
// re-check them mid-run.
type Config struct {
	CharsPerSec     float64 `toml:"chars_per_sec"`
	MinDuration     float64 `toml:"min_duration"`
	MaxDuration     float64 `toml:"max_duration"`
	MinGap          float64 `toml:"min_gap"`
	ShortThreshold  float64 `toml:"short_threshold"`
	LongThreshold   float64 `toml:"long_threshold"`
	MaxAnticipation float64 `toml:"max_anticipation"`
}

// DefaultConfig returns the §8 default configuration used by the end-to-end
// scenarios and by the CLI when no override is supplied.
func DefaultConfig() Config {
	return Config{
		CharsPerSec:     20,
		MinDuration:     1.0,
		MaxDuration:     8.0,
		MinGap:          0.05,
		ShortThreshold:  0.8,
		LongThreshold:   3.0,
		MaxAnticipation: 0.5,
	}
}

// Validate enforces the §3.3 validated ranges and cross-field constraints.
// Violations fail fast, before the pipeline runs (§7).
func (c Config) Validate() error {
	type bound struct {
		name     string
		value    float64
		min, max float64
	}
	bounds := []bound{
		{"chars_per_sec", c.CharsPerSec, 10, 40},
		{"min_duration", c.MinDuration, 0.5, 2},
		{"max_duration", c.MaxDuration, 3, 15},
		{"min_gap", c.MinGap, 0.01, 0.2},
		{"short_threshold", c.ShortThreshold, 0.5, 1.5},
		{"long_threshold", c.LongThreshold, 2, 6},
		{"max_anticipation", c.MaxAnticipation, 0, 1},
	}
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("%s must be between %v and %v, got %v", b.name, b.min, b.max, b.value)
		}
	}
	if c.MinDuration >= c.MaxDuration {
		return fmt.Errorf("min_duration (%v) must be less than max_duration (%v)", c.MinDuration, c.MaxDuration)
	}
	if c.ShortThreshold >= c.LongThreshold {
		return fmt.Errorf("short_threshold (%v) must be less than long_threshold (%v)", c.ShortThreshold, c.LongThreshold)
	}
	return nil
}
