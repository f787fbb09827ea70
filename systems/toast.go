package systems

import (
	"image/color"
	"log"
	"time"

	"github.com/automoto/toastbuddy/components"
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/toast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateToasts advances the toast queue by one tick
func UpdateToasts(ecs *ecs.ECS) {
	display, ok := getToastDisplay(ecs)
	if !ok {
		return
	}
	display.Queue.Update(FrameDelta())
}

// DrawToasts renders the toast stack on top of the screen
func DrawToasts(ecs *ecs.ECS, screen *ebiten.Image) {
	display, ok := getToastDisplay(ecs)
	if !ok {
		return
	}
	display.Renderer.SetTarget(screen)
	display.Presenter.Render()
	display.Renderer.SetTarget(nil)
}

// FrameDelta is the simulated time covered by one ebiten tick
func FrameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// ShowToast queues a message on the display singleton, if there is one
func ShowToast(ecs *ecs.ECS, text string, clr color.RGBA) (toast.Handle, bool) {
	display, ok := getToastDisplay(ecs)
	if !ok {
		return toast.Handle{}, false
	}
	if cfg.Debug.LogToasts {
		log.Printf("[toast] show %q", text)
	}
	return display.Queue.ShowMessage(text, clr, 1), true
}

// ClearToasts fades out every live toast
func ClearToasts(ecs *ecs.ECS) {
	display, ok := getToastDisplay(ecs)
	if !ok {
		return
	}
	display.Queue.ClearAll()
}

// ToastAnchor returns the stack origin for a screen of the given width:
// the top edge point matching the justification, inset by margin.
func ToastAnchor(justify toast.Justify, width int, margin float64) toast.Point {
	switch justify {
	case toast.JustifyRight:
		return toast.Point{X: float64(width) - margin, Y: margin}
	case toast.JustifyCenter:
		return toast.Point{X: float64(width) / 2, Y: margin}
	}
	return toast.Point{X: margin, Y: margin}
}

// getToastDisplay returns the singleton ToastDisplay component
func getToastDisplay(ecs *ecs.ECS) (*components.ToastDisplayData, bool) {
	entry, ok := components.ToastDisplay.First(ecs.World)
	if !ok {
		return nil, false
	}
	display := components.ToastDisplay.Get(entry)
	if display.Queue == nil || display.Presenter == nil {
		return nil, false
	}
	return display, true
}
