package systems

import (
	"encoding/json"
	"log"
	"time"

	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/toast"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the toast settings stored on disk
type SavedSettings struct {
	Mode      string `json:"mode"`
	FadeInMS  *int64 `json:"fadeInMs,omitempty"`
	ShowMS    *int64 `json:"showMs,omitempty"`
	FadeOutMS *int64 `json:"fadeOutMs,omitempty"`
	Justify   string `json:"justify"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "toastbuddy",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveToastSettings stores the given toast settings
func SaveToastSettings(tc cfg.ToastConfig) {
	_ = SaveSettings(&SavedSettings{
		Mode:      tc.Mode,
		FadeInMS:  millis(tc.FadeIn),
		ShowMS:    millis(tc.Show),
		FadeOutMS: millis(tc.FadeOut),
		Justify:   tc.Justify,
	})
}

// ApplySavedSettingsGlobal merges saved settings into cfg.Toast.
// Used during startup before the display is built; invalid values are ignored.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	merged, err := cfg.Toast.Apply(cfg.ToastOverrides{
		Mode:    saved.Mode,
		Justify: saved.Justify,
		FadeIn:  duration(saved.FadeInMS),
		Show:    duration(saved.ShowMS),
		FadeOut: duration(saved.FadeOutMS),
	})
	if err != nil {
		log.Printf("Warning: Ignoring saved settings: %v", err)
		return
	}
	cfg.Toast = merged
}

func millis(d time.Duration) *int64 {
	ms := d.Milliseconds()
	return &ms
}

// duration converts a stored millisecond count; nil means not saved
func duration(ms *int64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}

// SetToastMode switches the display's strategy and remembers the choice
func SetToastMode(queue *toast.Queue, mode string) error {
	strategy, err := toast.ParseMode(mode)
	if err != nil {
		return err
	}
	queue.SetStrategy(strategy)
	cfg.Toast.Mode = toast.ModeName(strategy)
	SaveToastSettings(cfg.Toast)
	return nil
}
