package scenes

import (
	"context"
	"log"
	"sync"

	"github.com/automoto/toastbuddy/components"
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/network"
	"github.com/automoto/toastbuddy/systems"
	"github.com/automoto/toastbuddy/systems/factory"
	"github.com/automoto/toastbuddy/toast"
	"github.com/automoto/toastbuddy/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ToastScene is the demo: input, a background event feed and the control
// panel all feed one toast queue
type ToastScene struct {
	ecs       *ecs.ECS
	display   components.ToastDisplayData
	controlUI *ui.ControlUI
	feed      *network.Feed
	cancel    context.CancelFunc
	once      sync.Once
}

// NewToastScene builds the toast display up front so that a missing font
// fails at startup instead of on the first frame
func NewToastScene() (*ToastScene, error) {
	display, err := factory.NewToastDisplay(cfg.Toast)
	if err != nil {
		return nil, err
	}

	justify := display.Presenter.Justify
	display.Presenter.Anchor = func() toast.Point {
		return systems.ToastAnchor(justify, cfg.C.Width, cfg.Toast.AnchorMargin)
	}

	ts := &ToastScene{display: display}
	ts.feed = network.NewFeed(display.Queue, cfg.Demo.EventInterval, nil)

	if cfg.Demo.ShowPanel {
		ts.controlUI, err = ui.NewControlUI(
			display.Queue,
			func() { systems.ToggleToastMode(display.Queue) },
			func() { ts.feed.Emit() },
		)
		if err != nil {
			return nil, err
		}
	}

	return ts, nil
}

// Queue exposes the scene's toast queue to other producers
func (ts *ToastScene) Queue() *toast.Queue {
	return ts.display.Queue
}

func (ts *ToastScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if ts.controlUI != nil {
		ts.controlUI.Update()
	}
}

func (ts *ToastScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)

	if ts.controlUI != nil {
		ts.controlUI.UI.Draw(screen)
	}
}

// Done reports whether the player asked to quit
func (ts *ToastScene) Done() bool {
	return ts.ecs != nil && systems.QuitRequested(ts.ecs)
}

// Close stops the background event feed
func (ts *ToastScene) Close() {
	if ts.cancel != nil {
		ts.cancel()
	}
	ts.feed.Stop()
}

func (ts *ToastScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateDemo)
	ts.ecs.AddSystem(systems.UpdateToasts)

	ts.ecs.AddRenderer(components.LayerDefault, systems.DrawDemoHint)
	ts.ecs.AddRenderer(components.LayerOverlay, systems.DrawToasts)

	factory.CreateToastDisplay(ts.ecs, ts.display)
	factory.CreateDemoState(ts.ecs)

	if cfg.Demo.EventInterval > 0 {
		var ctx context.Context
		ctx, ts.cancel = context.WithCancel(context.Background())
		ts.feed.Start(ctx)
	} else {
		log.Println("[scene] event feed disabled")
	}

	ts.display.Queue.ShowMessage("Welcome to toastbuddy", cfg.White, 1)
}
