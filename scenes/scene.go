package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a screen the game can switch to
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
