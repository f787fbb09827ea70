package components

import (
	"github.com/automoto/toastbuddy/render"
	"github.com/automoto/toastbuddy/toast"
	"github.com/yohamta/donburi"
)

// ToastDisplayData is the singleton holding the toast queue and its presenter
type ToastDisplayData struct {
	Queue     *toast.Queue
	Presenter *toast.Presenter
	Renderer  *render.TextRenderer
}

var ToastDisplay = donburi.NewComponentType[ToastDisplayData]()

// DemoStateData tracks demo-scene state that systems share
type DemoStateData struct {
	Shown      int  // Toasts shown from input since the scene started
	QuitWanted bool // Quit action pressed
}

var DemoState = donburi.NewComponentType[DemoStateData]()
