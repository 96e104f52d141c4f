package world

import (
	"fmt"
	"math"
)

// ConfigError reports a parameter that makes generation impossible.
// It is returned before any tile is written.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Probability returns a ConfigError when p is outside [0, 1].
func Probability(field string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return &ConfigError{Field: field, Reason: fmt.Sprintf("probability %v outside [0,1]", p)}
	}
	return nil
}

// NonNegative returns a ConfigError when n is negative.
func NonNegative(field string, n int) error {
	if n < 0 {
		return &ConfigError{Field: field, Reason: fmt.Sprintf("%d is negative", n)}
	}
	return nil
}
