package factory

import (
	"fmt"
	"log"

	"github.com/automoto/toastbuddy/archetypes"
	"github.com/automoto/toastbuddy/components"
	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/fonts"
	"github.com/automoto/toastbuddy/render"
	"github.com/automoto/toastbuddy/toast"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewToastDisplay builds the queue, renderer and presenter described by the
// toast config. The font must already be loaded.
func NewToastDisplay(tc cfg.ToastConfig) (components.ToastDisplayData, error) {
	lifecycle, err := tc.Lifecycle()
	if err != nil {
		return components.ToastDisplayData{}, err
	}
	strategy, err := tc.Strategy()
	if err != nil {
		return components.ToastDisplayData{}, err
	}
	justify, err := tc.Justification()
	if err != nil {
		return components.ToastDisplayData{}, err
	}
	curve, err := tc.Ease()
	if err != nil {
		return components.ToastDisplayData{}, err
	}

	face, err := fonts.FontName(tc.Font).Get()
	if err != nil {
		return components.ToastDisplayData{}, fmt.Errorf("toast font: %w", err)
	}

	queue, err := toast.NewQueue(lifecycle, strategy)
	if err != nil {
		return components.ToastDisplayData{}, err
	}

	renderer := render.NewTextRenderer(face)
	renderer.ShadowOffsetX = tc.ShadowOffsetX
	renderer.ShadowOffsetY = tc.ShadowOffsetY
	renderer.ShadowSize = tc.ShadowSize

	presenter := toast.NewPresenter(queue, renderer)
	presenter.Justify = justify
	presenter.Shadow = tc.Shadow
	presenter.ShadowColor = cfg.Black
	presenter.Ease = curve

	log.Printf("[toast] display ready: mode=%s fade=%v/%v/%v font=%s", toast.ModeName(strategy),
		lifecycle.FadeIn, lifecycle.Show, lifecycle.FadeOut, tc.Font)

	return components.ToastDisplayData{
		Queue:     queue,
		Presenter: presenter,
		Renderer:  renderer,
	}, nil
}

// CreateToastDisplay spawns the toast display singleton entity
func CreateToastDisplay(ecs *ecs.ECS, display components.ToastDisplayData) *donburi.Entry {
	entry := archetypes.ToastDisplay.Spawn(ecs)
	components.ToastDisplay.SetValue(entry, display)
	return entry
}

// CreateDemoState spawns the demo state singleton entity
func CreateDemoState(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.DemoState.Spawn(ecs)
	components.DemoState.SetValue(entry, components.DemoStateData{})
	return entry
}
