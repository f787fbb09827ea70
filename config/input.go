package config

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionClear
	ActionToggleMode
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionConfirm:    "Confirm",
	ActionClear:      "Clear",
	ActionToggleMode: "ToggleMode",
	ActionQuit:       "Quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputBinding represents the keys and buttons bound to an action.
// Keys use ebiten key names ("Space", "ArrowUp") and are parsed by the input system.
type InputBinding struct {
	Keys                   []string `yaml:"keys"`
	StandardGamepadButtons []int    `yaml:"buttons"` // ebiten.StandardGamepadButton values
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionUp: {
				Keys:                   []string{"ArrowUp", "W"},
				StandardGamepadButtons: []int{12}, // D-pad up
			},
			ActionDown: {
				Keys:                   []string{"ArrowDown", "S"},
				StandardGamepadButtons: []int{13}, // D-pad down
			},
			ActionLeft: {
				Keys:                   []string{"ArrowLeft", "A"},
				StandardGamepadButtons: []int{14}, // D-pad left
			},
			ActionRight: {
				Keys:                   []string{"ArrowRight", "D"},
				StandardGamepadButtons: []int{15}, // D-pad right
			},
			ActionConfirm: {
				Keys:                   []string{"Enter"},
				StandardGamepadButtons: []int{0}, // A / Cross
			},
			ActionClear: {
				Keys:                   []string{"Space"},
				StandardGamepadButtons: []int{1}, // B / Circle
			},
			ActionToggleMode: {
				Keys:                   []string{"M"},
				StandardGamepadButtons: []int{3}, // Y / Triangle
			},
			ActionQuit: {
				Keys: []string{"Escape"},
			},
		},
	}
}
