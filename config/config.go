package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/toastbuddy/toast"
	"github.com/tanema/gween/ease"
)

// ToastConfig contains toast display configuration
type ToastConfig struct {
	Mode    string        `yaml:"mode"`     // "timed" (rolling) or "manual" (clear on demand)
	FadeIn  time.Duration `yaml:"fade_in"`  // Time to fade a message in
	Show    time.Duration `yaml:"show"`     // Time a message stays up (timed mode only)
	FadeOut time.Duration `yaml:"fade_out"` // Time to fade a message out
	Easing  string        `yaml:"easing"`   // Fade curve, key of Easings

	// Layout
	Justify      string  `yaml:"justify"`       // left, center or right
	AnchorMargin float64 `yaml:"anchor_margin"` // Inset of the stack origin from the screen corner

	// Font
	Font     string  `yaml:"font"`      // Font resource name
	FontSize float64 `yaml:"font_size"` // Point size used when loading the font

	// Drop shadow
	Shadow        bool    `yaml:"shadow"`
	ShadowOffsetX float64 `yaml:"shadow_offset_x"`
	ShadowOffsetY float64 `yaml:"shadow_offset_y"`
	ShadowSize    float64 `yaml:"shadow_size"` // Shadow scale relative to the text
}

// DemoConfig contains the demo scene configuration
type DemoConfig struct {
	EventInterval time.Duration `yaml:"event_interval"` // Background event feed period, 0 disables it
	ShowPanel     bool          `yaml:"show_panel"`     // Show the ebitenui control panel
	HintColor     color.RGBA    `yaml:"-"`
	Hint          string        `yaml:"hint"`
}

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Toast ToastConfig
var Demo DemoConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogToasts bool // Log every toast shown
}

// Easings maps config names to fade curves
var Easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inquad":    ease.InQuad,
	"outquad":   ease.OutQuad,
	"inoutquad": ease.InOutQuad,
	"outcubic":  ease.OutCubic,
	"insine":    ease.InSine,
	"outsine":   ease.OutSine,
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Background   = color.RGBA{R: 100, G: 149, B: 237, A: 255} // cornflower blue
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Lifecycle returns the toast timings, validated.
func (t ToastConfig) Lifecycle() (toast.Config, error) {
	c := toast.Config{FadeIn: t.FadeIn, Show: t.Show, FadeOut: t.FadeOut}
	if err := c.Validate(); err != nil {
		return toast.Config{}, err
	}
	return c, nil
}

// Strategy returns the lifecycle strategy named by Mode.
func (t ToastConfig) Strategy() (toast.Strategy, error) {
	return toast.ParseMode(t.Mode)
}

// Justification returns the parsed Justify setting.
func (t ToastConfig) Justification() (toast.Justify, error) {
	return toast.ParseJustify(t.Justify)
}

// Ease returns the fade curve named by Easing.
func (t ToastConfig) Ease() (ease.TweenFunc, error) {
	if t.Easing == "" {
		return ease.Linear, nil
	}
	fn, ok := Easings[t.Easing]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", t.Easing)
	}
	return fn, nil
}

// ToastOverrides are optional toast settings. Empty strings and nil
// durations keep the current value; a zero duration is a real setting.
type ToastOverrides struct {
	Mode    string
	Justify string
	FadeIn  *time.Duration
	Show    *time.Duration
	FadeOut *time.Duration
}

// Apply returns t with the overrides set. The result is validated and t is
// returned unchanged with the error when it does not pass.
func (t ToastConfig) Apply(o ToastOverrides) (ToastConfig, error) {
	merged := t
	if o.Mode != "" {
		merged.Mode = o.Mode
	}
	if o.Justify != "" {
		merged.Justify = o.Justify
	}
	if o.FadeIn != nil {
		merged.FadeIn = *o.FadeIn
	}
	if o.Show != nil {
		merged.Show = *o.Show
	}
	if o.FadeOut != nil {
		merged.FadeOut = *o.FadeOut
	}
	if err := merged.Validate(); err != nil {
		return t, err
	}
	return merged, nil
}

// Validate checks every toast setting that has to parse.
func (t ToastConfig) Validate() error {
	if _, err := t.Lifecycle(); err != nil {
		return err
	}
	if _, err := t.Strategy(); err != nil {
		return err
	}
	if _, err := t.Justification(); err != nil {
		return err
	}
	if _, err := t.Ease(); err != nil {
		return err
	}
	if t.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", t.FontSize)
	}
	return nil
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "toastbuddy",
	}

	// Toast Config
	Toast = ToastConfig{
		Mode:    "timed",
		FadeIn:  toast.DefaultFadeIn,
		Show:    toast.DefaultShow,
		FadeOut: toast.DefaultFadeOut,
		Easing:  "linear",

		Justify:      "right",
		AnchorMargin: 32,

		Font:     "goregular",
		FontSize: 48,

		Shadow:        true,
		ShadowOffsetX: 0,
		ShadowOffsetY: 3,
		ShadowSize:    1,
	}

	// Demo Config
	Demo = DemoConfig{
		EventInterval: 0,
		ShowPanel:     true,
		HintColor:     White,
		Hint:          "Arrows/Enter pop up messages, Space clears, M switches mode",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogToasts: false,
	}
}
