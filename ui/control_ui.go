package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/toast"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlUI is a small ebitenui panel for poking the toast queue with the mouse
type ControlUI struct {
	UI    *ebitenui.UI
	Queue *toast.Queue

	// Callbacks
	OnToggleMode func()
	OnEvent      func()

	// Widget references for updates
	modeLabel  *widget.Label
	countLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face

	shown int
}

// NewControlUI creates the control panel for q
func NewControlUI(q *toast.Queue, onToggleMode, onEvent func()) (*ControlUI, error) {
	cui := &ControlUI{
		Queue:        q,
		OnToggleMode: onToggleMode,
		OnEvent:      onEvent,
	}

	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()

	return cui, nil
}

func (cui *ControlUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("control panel font: %w", err)
	}

	// Stored as text.Face interface for ebitenui compatibility
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	return nil
}

func (cui *ControlUI) buildUI() {
	// Transparent root so the scene shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.modeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	panel.AddChild(cui.modeLabel)

	cui.countLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panel.AddChild(cui.countLabel)

	panel.AddChild(cui.buildButtonsContainer())
	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	container.AddChild(cui.newButton("Toast", func() {
		cui.shown++
		cui.Queue.ShowFormattedMessage("Clicked %d", cfg.Yellow, cui.shown)
	}))
	container.AddChild(cui.newButton("Event", func() {
		if cui.OnEvent != nil {
			cui.OnEvent()
		}
	}))
	container.AddChild(cui.newButton("Clear", func() {
		cui.Queue.ClearAll()
	}))
	container.AddChild(cui.newButton("Mode", func() {
		if cui.OnToggleMode != nil {
			cui.OnToggleMode()
		}
	}))

	return container
}

func (cui *ControlUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 24)),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			cui.UpdateUI()
		}),
	)
}

func (cui *ControlUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the queue
func (cui *ControlUI) UpdateUI() {
	if cui.modeLabel != nil {
		cui.modeLabel.Label = "Mode: " + toast.ModeName(cui.Queue.Strategy())
	}
	if cui.countLabel != nil {
		cui.countLabel.Label = fmt.Sprintf("Active: %d", cui.Queue.Len())
	}
}

// Update updates the ebitenui UI
func (cui *ControlUI) Update() {
	cui.UpdateUI()
	cui.UI.Update()
}
