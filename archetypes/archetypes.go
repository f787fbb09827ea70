package archetypes

import (
	"github.com/automoto/toastbuddy/components"
	"github.com/automoto/toastbuddy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ToastDisplay = newArchetype(
		tags.ToastDisplay,
		components.ToastDisplay,
	)
	DemoState = newArchetype(
		tags.DemoState,
		components.DemoState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerOverlay,
		append(a.components, cs...)...,
	))
	return e
}
