package toast

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// Presenter draws the messages of a Queue through a Renderer.
type Presenter struct {
	Queue    *Queue
	Renderer Renderer

	Anchor    AnchorFunc    // nil means the origin
	Transform TransformFunc // nil means identity
	Justify   Justify

	Shadow      bool       // draw a drop shadow behind each line
	ShadowColor color.RGBA // alpha is replaced with the line's alpha

	Ease ease.TweenFunc // fade curve, nil means linear
}

// NewPresenter returns a right-justified presenter with a black drop shadow.
func NewPresenter(q *Queue, r Renderer) *Presenter {
	return &Presenter{
		Queue:       q,
		Renderer:    r,
		Justify:     JustifyRight,
		Shadow:      true,
		ShadowColor: color.RGBA{A: 255},
		Ease:        ease.Linear,
	}
}

// Alpha returns the display alpha of m under cfg.
// FadingIn ramps 0 to 255, Showing is 255, FadingOut ramps 255 to 0 and Dead is 0.
func Alpha(m *Message, cfg Config, fn ease.TweenFunc) uint8 {
	if fn == nil {
		fn = ease.Linear
	}
	switch m.state {
	case FadingIn:
		if cfg.FadeIn <= 0 || m.stateTimer >= cfg.FadeIn {
			return 255
		}
		return clampAlpha(fn(float32(m.stateTimer.Seconds()), 0, 255, float32(cfg.FadeIn.Seconds())))
	case Showing:
		return 255
	case FadingOut:
		if cfg.FadeOut <= 0 || m.stateTimer >= cfg.FadeOut {
			return 0
		}
		return clampAlpha(fn(float32(m.stateTimer.Seconds()), 255, -255, float32(cfg.FadeOut.Seconds())))
	}
	return 0
}

func clampAlpha(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// VerticalOffset returns the y coordinate of m's line for the given anchor.
func VerticalOffset(m *Message, anchor Point, lineHeight float64) float64 {
	return anchor.Y + m.position*lineHeight*m.scale
}

func (p *Presenter) anchor() Point {
	if p.Anchor == nil {
		return Point{}
	}
	return p.Anchor()
}

func (p *Presenter) transform() Matrix {
	if p.Transform == nil {
		return Identity()
	}
	return p.Transform()
}

// Render draws every visible message in queue order.
func (p *Presenter) Render() {
	q := p.Queue
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.messages) == 0 {
		return
	}

	anchor := p.anchor()
	p.Renderer.Begin(p.transform())
	defer p.Renderer.End()

	for _, m := range q.messages {
		if m.state == Dead {
			continue
		}
		alpha := Alpha(m, q.cfg, p.Ease)

		fg := m.color
		fg.A = alpha

		var shadow *color.RGBA
		if p.Shadow {
			sc := p.ShadowColor
			sc.A = alpha
			shadow = &sc
		}

		_, lineHeight := p.Renderer.Measure(m.text)
		p.Renderer.Draw(DrawCommand{
			Text:     m.text,
			Position: Point{X: anchor.X, Y: VerticalOffset(m, anchor, lineHeight)},
			Justify:  p.Justify,
			Scale:    m.scale,
			Color:    fg,
			Shadow:   shadow,
		})
	}
}
