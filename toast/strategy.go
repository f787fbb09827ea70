package toast

import (
	"fmt"
	"strings"
	"time"
)

// Strategy ages a message by dt and moves it through its lifecycle.
type Strategy interface {
	Advance(m *Message, dt time.Duration, cfg Config)
}

// Timed expires messages on its own: FadingIn -> Showing -> FadingOut -> Dead.
type Timed struct{}

// Manual keeps messages in Showing until the queue is cleared.
type Manual struct{}

func (Timed) Advance(m *Message, dt time.Duration, cfg Config) {
	m.Age(dt)
	switch m.state {
	case FadingIn:
		if m.stateTimer >= cfg.FadeIn {
			m.Transition(Showing)
		}
	case Showing:
		if m.stateTimer >= cfg.Show {
			m.Transition(FadingOut)
		}
	case FadingOut:
		if m.stateTimer >= cfg.FadeOut {
			m.Transition(Dead)
		}
	}
}

func (Manual) Advance(m *Message, dt time.Duration, cfg Config) {
	m.Age(dt)
	switch m.state {
	case FadingIn:
		if m.stateTimer >= cfg.FadeIn {
			m.Transition(Showing)
		}
	case FadingOut:
		if m.stateTimer >= cfg.FadeOut {
			m.Transition(Dead)
		}
	}
}

// ParseMode maps a mode name to its strategy.
// "timed"/"rolling" and "manual"/"clear" are accepted, case-insensitively.
func ParseMode(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "timed", "rolling":
		return Timed{}, nil
	case "manual", "clear":
		return Manual{}, nil
	}
	return nil, fmt.Errorf("toast: unknown mode %q", name)
}

// ModeName is the inverse of ParseMode for the built-in strategies.
func ModeName(s Strategy) string {
	switch s.(type) {
	case Manual, *Manual:
		return "manual"
	}
	return "timed"
}
