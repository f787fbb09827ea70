package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a config overlay. Only keys present in
// the file replace the defaults set in init.
type fileConfig struct {
	Window *Config                 `yaml:"window"`
	Toast  *ToastConfig            `yaml:"toast"`
	Demo   *DemoConfig             `yaml:"demo"`
	Input  map[string]InputBinding `yaml:"input"`
}

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load overlays YAML data onto the global configuration. Nothing is changed
// if the data fails to parse or validate.
func Load(data []byte) error {
	window := *C
	toastCfg := Toast
	demo := Demo

	fc := fileConfig{Window: &window, Toast: &toastCfg, Demo: &demo}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := toastCfg.Validate(); err != nil {
		return fmt.Errorf("toast config: %w", err)
	}
	if window.Width <= 0 || window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", window.Width, window.Height)
	}
	if demo.EventInterval < 0 {
		return fmt.Errorf("event interval %v must not be negative", demo.EventInterval)
	}

	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for id, b := range Input.Bindings {
		bindings[id] = b
	}
	for name, b := range fc.Input {
		id, ok := ParseAction(name)
		if !ok {
			return fmt.Errorf("unknown input action %q", name)
		}
		bindings[id] = b
	}

	C = &window
	Toast = toastCfg
	Demo = demo
	Input.Bindings = bindings
	return nil
}

// ParseAction looks up an action by name, case-sensitively.
func ParseAction(name string) (ActionID, bool) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		if actionNames[id] == name {
			return id, true
		}
	}
	return ActionNone, false
}
