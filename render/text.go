package render

import (
	"image/color"

	"github.com/automoto/toastbuddy/fonts"
	"github.com/automoto/toastbuddy/toast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// TextRenderer draws toast lines onto an ebiten image with text/v2.
type TextRenderer struct {
	face       *text.GoXFace
	lineHeight float64
	target     *ebiten.Image
	geoM       ebiten.GeoM
	op         text.DrawOptions

	ShadowOffsetX float64
	ShadowOffsetY float64
	ShadowSize    float64 // Shadow scale relative to the text
}

// NewTextRenderer wraps a loaded face. The face is owned by the renderer
// for the rest of the program.
func NewTextRenderer(face font.Face) *TextRenderer {
	return &TextRenderer{
		face:          text.NewGoXFace(face),
		lineHeight:    fonts.LineHeight(face),
		ShadowOffsetY: 3,
		ShadowSize:    1,
	}
}

// SetTarget selects the image drawn to by the next batch.
func (r *TextRenderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

// Measure returns the unscaled width of a single line and the font's line
// spacing, so stacked toasts sit one line apart.
func (r *TextRenderer) Measure(s string) (float64, float64) {
	w, _ := text.Measure(s, r.face, r.lineHeight)
	return w, r.lineHeight
}

func (r *TextRenderer) Begin(transform toast.Matrix) {
	r.geoM = toGeoM(transform)
}

func (r *TextRenderer) Draw(cmd toast.DrawCommand) {
	if r.target == nil {
		return
	}
	if cmd.Shadow != nil {
		offset := toast.Point{X: cmd.Position.X + r.ShadowOffsetX, Y: cmd.Position.Y + r.ShadowOffsetY}
		r.drawLine(cmd.Text, offset, cmd.Justify, cmd.Scale*r.ShadowSize, *cmd.Shadow)
	}
	r.drawLine(cmd.Text, cmd.Position, cmd.Justify, cmd.Scale, cmd.Color)
}

func (r *TextRenderer) End() {}

func (r *TextRenderer) drawLine(s string, at toast.Point, justify toast.Justify, scale float64, clr color.RGBA) {
	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.GeoM.Concat(r.geoM)

	// Toast colors carry straight alpha.
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: clr.A})

	op.PrimaryAlign = toAlign(justify)
	text.Draw(r.target, s, r.face, op)
}

func toAlign(j toast.Justify) text.Align {
	switch j {
	case toast.JustifyCenter:
		return text.AlignCenter
	case toast.JustifyRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

func toGeoM(mx toast.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, mx.A)
	g.SetElement(0, 1, mx.B)
	g.SetElement(0, 2, mx.Tx)
	g.SetElement(1, 0, mx.C)
	g.SetElement(1, 1, mx.D)
	g.SetElement(1, 2, mx.Ty)
	return g
}
