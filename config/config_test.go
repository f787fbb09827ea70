package config

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/toastbuddy/toast"
)

func dur(d time.Duration) *time.Duration { return &d }

func TestToastApply(t *testing.T) {
	base := Toast

	tests := []struct {
		name  string
		in    ToastOverrides
		check func(t *testing.T, got ToastConfig)
	}{
		{"empty keeps everything", ToastOverrides{}, func(t *testing.T, got ToastConfig) {
			if got != base {
				t.Errorf("got %+v, want %+v", got, base)
			}
		}},
		{"zero fade in is kept", ToastOverrides{FadeIn: dur(0)}, func(t *testing.T, got ToastConfig) {
			if got.FadeIn != 0 {
				t.Errorf("FadeIn = %v, want 0", got.FadeIn)
			}
			if got.FadeOut != base.FadeOut {
				t.Errorf("FadeOut = %v, want %v", got.FadeOut, base.FadeOut)
			}
		}},
		{"zero fade out is kept", ToastOverrides{FadeOut: dur(0)}, func(t *testing.T, got ToastConfig) {
			if got.FadeOut != 0 {
				t.Errorf("FadeOut = %v, want 0", got.FadeOut)
			}
		}},
		{"mode and show", ToastOverrides{Mode: "manual", Show: dur(2 * time.Second)}, func(t *testing.T, got ToastConfig) {
			if got.Mode != "manual" || got.Show != 2*time.Second {
				t.Errorf("got mode %q show %v", got.Mode, got.Show)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Apply(tt.in)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestToastApplyRejectsInvalid(t *testing.T) {
	base := Toast

	got, err := base.Apply(ToastOverrides{Show: dur(-time.Second)})
	if !errors.Is(err, toast.ErrNegativeDuration) {
		t.Fatalf("err = %v, want ErrNegativeDuration", err)
	}
	if got != base {
		t.Errorf("rejected overrides changed config: %+v", got)
	}

	if _, err := base.Apply(ToastOverrides{Justify: "sideways"}); err == nil {
		t.Error("expected error for bad justify")
	}
}
