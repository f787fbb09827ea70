package systems

import (
	"log"

	"github.com/automoto/toastbuddy/components"
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateDemo in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.Resolved {
		resolveBindings(input)
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// resolveBindings parses the configured key names into ebiten keys.
// Unknown names are logged and skipped.
func resolveBindings(input *components.InputData) {
	for actionID, binding := range cfg.Input.Bindings {
		if actionID <= cfg.ActionNone || actionID >= cfg.ActionCount {
			continue
		}
		var resolved components.InputBindingData
		for _, name := range binding.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				log.Printf("[input] %s: unknown key %q: %v", actionID, name, err)
				continue
			}
			resolved.Keys = append(resolved.Keys, key)
		}
		for _, btn := range binding.StandardGamepadButtons {
			if btn < 0 || btn > int(ebiten.StandardGamepadButtonMax) {
				log.Printf("[input] %s: unknown gamepad button %d", actionID, btn)
				continue
			}
			resolved.Buttons = append(resolved.Buttons, ebiten.StandardGamepadButton(btn))
		}
		input.Bindings[actionID] = resolved
	}
	input.Resolved = true
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
