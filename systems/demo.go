package systems

import (
	"fmt"
	"log"

	"github.com/automoto/toastbuddy/components"
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/fonts"
	"github.com/automoto/toastbuddy/toast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// directions pop up a formatted toast when pressed
var directions = []cfg.ActionID{cfg.ActionUp, cfg.ActionDown, cfg.ActionLeft, cfg.ActionRight}

// Cached hint face (lazy initialized)
var hintFace *text.GoXFace

// UpdateDemo turns input actions into toasts
func UpdateDemo(ecs *ecs.ECS) {
	display, ok := getToastDisplay(ecs)
	if !ok {
		return
	}
	state := getOrCreateDemoState(ecs)
	input := getOrCreateInput(ecs)

	for _, action := range directions {
		if GetAction(input, action).JustPressed {
			display.Queue.ShowFormattedMessage("Pressed %s", cfg.Yellow, action)
			state.Shown++
		}
	}

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		display.Queue.ShowMessage("Pressed Enter!", cfg.LightGreen, 1.25)
		state.Shown++
	}

	if GetAction(input, cfg.ActionClear).JustPressed {
		ClearToasts(ecs)
		if _, ok := ShowToast(ecs, "Pressed Space!", cfg.Yellow); ok {
			state.Shown++
		}
	}

	if GetAction(input, cfg.ActionToggleMode).JustPressed {
		ToggleToastMode(display.Queue)
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		state.QuitWanted = true
	}
}

// ToggleToastMode flips between the timed and manual strategies and
// announces the switch with a toast
func ToggleToastMode(queue *toast.Queue) {
	next := "manual"
	if _, manual := queue.Strategy().(toast.Manual); manual {
		next = "timed"
	}
	if err := SetToastMode(queue, next); err != nil {
		log.Printf("[demo] could not switch mode: %v", err)
		return
	}
	queue.ShowFormattedMessage("Mode: %s", cfg.Orange, next)
}

// QuitRequested reports whether the quit action was pressed
func QuitRequested(ecs *ecs.ECS) bool {
	return getOrCreateDemoState(ecs).QuitWanted
}

// DrawDemoHint renders the key hint and the live toast count
func DrawDemoHint(ecs *ecs.ECS, screen *ebiten.Image) {
	if hintFace == nil {
		face, err := fonts.Hint.Get()
		if err != nil {
			return
		}
		hintFace = text.NewGoXFace(face)
	}

	count := 0
	if display, ok := getToastDisplay(ecs); ok {
		count = display.Queue.Len()
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, float64(screen.Bounds().Dy())-28)
	op.ColorScale.ScaleWithColor(cfg.Demo.HintColor)
	text.Draw(screen, cfg.Demo.Hint, hintFace, op)

	op.GeoM.Reset()
	op.GeoM.Translate(12, 12)
	text.Draw(screen, fmt.Sprintf("mode %s, toasts %d", cfg.Toast.Mode, count), hintFace, op)
}

// getOrCreateDemoState returns the singleton DemoState component
func getOrCreateDemoState(ecs *ecs.ECS) *components.DemoStateData {
	entry, ok := components.DemoState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.DemoState))
	}
	return components.DemoState.Get(entry)
}
