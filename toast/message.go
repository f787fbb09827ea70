package toast

import (
	"image/color"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle phase of a toast message
type State int

const (
	FadingIn State = iota
	Showing
	FadingOut
	Dead
)

func (s State) String() string {
	switch s {
	case FadingIn:
		return "FadingIn"
	case Showing:
		return "Showing"
	case FadingOut:
		return "FadingOut"
	case Dead:
		return "Dead"
	}
	return "Unknown"
}

// Message is a single toast owned by a Queue. Text, color and scale never
// change after creation; position, state and timer are advanced by Update.
type Message struct {
	id    uuid.UUID
	text  string
	color color.RGBA
	scale float64

	position   float64       // current slot, animates toward its target
	state      State         // current lifecycle phase
	stateTimer time.Duration // time spent in the current state
}

func newMessage(text string, clr color.RGBA, scale, position float64) *Message {
	if scale <= 0 {
		scale = 1
	}
	return &Message{
		id:       uuid.New(),
		text:     text,
		color:    clr,
		scale:    scale,
		position: position,
		state:    FadingIn,
	}
}

func (m *Message) ID() uuid.UUID             { return m.id }
func (m *Message) Text() string              { return m.text }
func (m *Message) Color() color.RGBA         { return m.color }
func (m *Message) Scale() float64            { return m.scale }
func (m *Message) Position() float64         { return m.position }
func (m *Message) State() State              { return m.state }
func (m *Message) StateTimer() time.Duration { return m.stateTimer }

// Age adds dt to the state timer.
func (m *Message) Age(dt time.Duration) {
	m.stateTimer += dt
}

// Transition moves the message forward to next and restarts its state timer.
// Backward moves are refused and reported as false.
func (m *Message) Transition(next State) bool {
	if next <= m.state {
		return false
	}
	m.state = next
	m.stateTimer = 0
	return true
}

// dismiss forces a live message into FadingOut. Messages already fading out
// keep their timer.
func (m *Message) dismiss() bool {
	if m.state != FadingIn && m.state != Showing {
		return false
	}
	m.state = FadingOut
	m.stateTimer = 0
	return true
}

// slideToward moves position toward target with a clamped exponential step.
func (m *Message) slideToward(target float64, dt time.Duration) {
	step := 2 * dt.Seconds()
	if step > 1 {
		step = 1
	}
	if step <= 0 {
		return
	}
	m.position += (target - m.position) * step
}
