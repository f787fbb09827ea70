package components

import (
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputBindingData is an action binding resolved to ebiten key codes
type InputBindingData struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Bindings [cfg.ActionCount]InputBindingData
	Resolved bool // Bindings parsed from config
}

var Input = donburi.NewComponentType[InputData]()
