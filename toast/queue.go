package toast

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"
	"time"
)

// Queue owns the ordered list of active toasts.
// All shared fields are protected by mu: ShowMessage and ClearAll may be
// called from any goroutine while the frame loop runs Update and Render.
type Queue struct {
	mu sync.Mutex

	cfg      Config
	strategy Strategy
	messages []*Message
}

// NewQueue creates an empty queue. A nil strategy means Timed.
func NewQueue(cfg Config, strategy Strategy) (*Queue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = Timed{}
	}
	return &Queue{cfg: cfg, strategy: strategy}, nil
}

// ShowMessage appends a new message in FadingIn. It starts at the slot it
// will settle in, so it does not jump on its first frame.
func (q *Queue) ShowMessage(text string, clr color.RGBA, scale float64) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	m := newMessage(text, clr, scale, float64(len(q.messages)))
	q.messages = append(q.messages, m)
	return Handle{q: q, m: m}
}

// ShowFormattedMessage formats the text with fmt.Sprintf before showing it.
// A format/argument mismatch shows the raw template instead.
func (q *Queue) ShowFormattedMessage(format string, clr color.RGBA, args ...any) Handle {
	text := fmt.Sprintf(format, args...)
	if strings.Count(text, "%!") > formatMarkers(format, args) {
		log.Printf("[toast] bad format %q with %d args, showing template", format, len(args))
		text = format
	}
	return q.ShowMessage(text, clr, 1)
}

// formatMarkers counts the "%!" sequences a well-formed Sprintf result may
// carry: those in the template plus those inside each argument.
func formatMarkers(format string, args []any) int {
	n := strings.Count(format, "%!")
	for _, arg := range args {
		n += strings.Count(fmt.Sprint(arg), "%!")
	}
	return n
}

// ClearAll starts fading out every message that is fading in or showing.
// Messages already fading out keep their timer, so repeated calls are no-ops.
func (q *Queue) ClearAll() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, m := range q.messages {
		m.dismiss()
	}
}

// Update slides messages toward their slots, ages them and drops the dead.
func (q *Queue) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	// Every message wants to be first in line; fading ones stop claiming a slot.
	target := 0.0
	kept := q.messages[:0]
	for _, m := range q.messages {
		m.slideToward(target, dt)
		q.strategy.Advance(m, dt, q.cfg)

		switch m.state {
		case FadingIn, Showing:
			kept = append(kept, m)
			target++
		case FadingOut:
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(q.messages); i++ {
		q.messages[i] = nil
	}
	q.messages = kept
}

// Len returns the number of messages still in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Each calls fn for every queued message in display order while holding the
// queue lock. fn must not call back into the queue.
func (q *Queue) Each(fn func(m *Message)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, m := range q.messages {
		fn(m)
	}
}

// Config returns the queue's lifecycle timings.
func (q *Queue) Config() Config {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.cfg
}

// SetConfig replaces the lifecycle timings for subsequent updates.
func (q *Queue) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	q.mu.Lock()
	q.cfg = cfg
	q.mu.Unlock()
	return nil
}

// Strategy returns the active lifecycle strategy.
func (q *Queue) Strategy() Strategy {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.strategy
}

// SetStrategy swaps the lifecycle strategy. Existing messages keep their
// state and continue under the new rules.
func (q *Queue) SetStrategy(s Strategy) {
	if s == nil {
		s = Timed{}
	}
	q.mu.Lock()
	q.strategy = s
	q.mu.Unlock()
}

// Handle refers to a message returned by ShowMessage. It stays usable after
// the message is removed and then reports Dead.
type Handle struct {
	q *Queue
	m *Message
}

func (h Handle) Valid() bool { return h.q != nil && h.m != nil }

func (h Handle) Text() string {
	if h.m == nil {
		return ""
	}
	return h.m.text
}

func (h Handle) State() State {
	if !h.Valid() {
		return Dead
	}
	h.q.mu.Lock()
	defer h.q.mu.Unlock()
	return h.m.state
}

func (h Handle) Position() float64 {
	if !h.Valid() {
		return 0
	}
	h.q.mu.Lock()
	defer h.q.mu.Unlock()
	return h.m.position
}

// Alive reports whether the message is still queued.
func (h Handle) Alive() bool {
	return h.State() != Dead
}
