package toast

import (
	"errors"
	"fmt"
	"time"
)

// Default lifecycle timings
const (
	DefaultFadeIn  = 250 * time.Millisecond
	DefaultShow    = 5 * time.Second
	DefaultFadeOut = 500 * time.Millisecond
)

// ErrNegativeDuration is returned when a lifecycle duration is below zero.
var ErrNegativeDuration = errors.New("toast: negative duration")

// Config holds the lifecycle timings shared by a queue and its strategy.
type Config struct {
	FadeIn  time.Duration // Time to fade a new message in
	Show    time.Duration // Time a message stays fully visible (timed strategy only)
	FadeOut time.Duration // Time to fade a dismissed message out
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		FadeIn:  DefaultFadeIn,
		Show:    DefaultShow,
		FadeOut: DefaultFadeOut,
	}
}

// Validate checks that no duration is negative.
func (c Config) Validate() error {
	if c.FadeIn < 0 {
		return fmt.Errorf("fade-in %v: %w", c.FadeIn, ErrNegativeDuration)
	}
	if c.Show < 0 {
		return fmt.Errorf("show %v: %w", c.Show, ErrNegativeDuration)
	}
	if c.FadeOut < 0 {
		return fmt.Errorf("fade-out %v: %w", c.FadeOut, ErrNegativeDuration)
	}
	return nil
}
