package toast

import (
	"image/color"
	"math"
	"sync"
	"testing"
	"time"
)

var yellow = color.RGBA{R: 255, G: 255, A: 255}

func newTestQueue(t *testing.T, s Strategy) *Queue {
	t.Helper()
	q, err := NewQueue(DefaultConfig(), s)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	return q
}

func states(q *Queue) []State {
	var out []State
	q.Each(func(m *Message) { out = append(out, m.State()) })
	return out
}

func TestNewQueueRejectsNegativeDurations(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"fade in", Config{FadeIn: -1}},
		{"show", Config{Show: -time.Second}},
		{"fade out", Config{FadeOut: -time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQueue(tt.cfg, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	q, err := NewQueue(Config{}, nil)
	if err != nil {
		t.Fatalf("zero config: %v", err)
	}
	if _, ok := q.Strategy().(Timed); !ok {
		t.Errorf("nil strategy should default to Timed, got %T", q.Strategy())
	}
}

func TestShowMessageAppendsAtNextSlot(t *testing.T) {
	q := newTestQueue(t, Timed{})

	a := q.ShowMessage("A", yellow, 1)
	b := q.ShowMessage("B", yellow, 1)

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	if a.Position() != 0 || b.Position() != 1 {
		t.Errorf("positions = %v, %v; want 0, 1", a.Position(), b.Position())
	}
	if a.State() != FadingIn || b.State() != FadingIn {
		t.Errorf("states = %v, %v; want FadingIn", a.State(), b.State())
	}

	// Both already sit on their targets, so sliding must not move them.
	for i := 0; i < 5; i++ {
		q.Update(60 * time.Millisecond)
	}
	if a.Position() != 0 || b.Position() != 1 {
		t.Errorf("positions after update = %v, %v; want 0, 1", a.Position(), b.Position())
	}
	if a.State() != Showing || b.State() != Showing {
		t.Errorf("states after 0.3s = %v, %v; want Showing", a.State(), b.State())
	}
}

func TestShowMessageNormalizesScale(t *testing.T) {
	q := newTestQueue(t, Timed{})
	q.ShowMessage("zero", yellow, 0)
	q.ShowMessage("double", yellow, 2)

	var scales []float64
	q.Each(func(m *Message) { scales = append(scales, m.Scale()) })
	if scales[0] != 1 || scales[1] != 2 {
		t.Errorf("scales = %v, want [1 2]", scales)
	}
}

func TestTimedMessageExpires(t *testing.T) {
	frames := []time.Duration{
		time.Second / 60,
		time.Second / 30,
		100 * time.Millisecond,
		time.Second,
	}
	for _, dt := range frames {
		t.Run(dt.String(), func(t *testing.T) {
			q := newTestQueue(t, Timed{})
			h := q.ShowMessage("bye", yellow, 1)

			cfg := q.Config()
			total := cfg.FadeIn + cfg.Show + cfg.FadeOut
			deadline := total + 3*dt + time.Second
			var elapsed time.Duration
			for elapsed < deadline {
				before := q.Len()
				q.Update(dt)
				elapsed += dt
				if q.Len() < before {
					if before-q.Len() != 1 {
						t.Fatalf("len dropped by %d", before-q.Len())
					}
					break
				}
			}
			if q.Len() != 0 {
				t.Fatalf("Len = %d after %v, want 0", q.Len(), elapsed)
			}
			if h.Alive() || h.State() != Dead {
				t.Errorf("handle state = %v, want Dead", h.State())
			}
		})
	}
}

func TestTimedLifecycleOrder(t *testing.T) {
	q := newTestQueue(t, Timed{})
	h := q.ShowMessage("x", yellow, 1)

	seen := []State{h.State()}
	for i := 0; i < 1000 && h.Alive(); i++ {
		q.Update(10 * time.Millisecond)
		if s := h.State(); s != seen[len(seen)-1] {
			seen = append(seen, s)
		}
	}
	want := []State{FadingIn, Showing, FadingOut, Dead}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", seen, want)
		}
	}
}

func TestManualNeverExpiresWithoutClear(t *testing.T) {
	q := newTestQueue(t, Manual{})
	h := q.ShowMessage("sticky", yellow, 1)

	for i := 0; i < 10000; i++ {
		q.Update(time.Second)
	}
	if h.State() != Showing {
		t.Fatalf("state = %v, want Showing", h.State())
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}

	q.ClearAll()
	if h.State() != FadingOut {
		t.Fatalf("state after ClearAll = %v, want FadingOut", h.State())
	}
	q.Update(q.Config().FadeOut)
	if q.Len() != 0 {
		t.Errorf("Len = %d after fade out, want 0", q.Len())
	}
}

func TestClearAllFadesEverythingOut(t *testing.T) {
	q := newTestQueue(t, Manual{})
	for _, s := range []string{"one", "two", "three"} {
		q.ShowMessage(s, yellow, 1)
	}
	q.Update(300 * time.Millisecond)
	for _, s := range states(q) {
		if s != Showing {
			t.Fatalf("states = %v, want all Showing", states(q))
		}
	}

	q.ClearAll()
	q.Each(func(m *Message) {
		if m.State() != FadingOut || m.StateTimer() != 0 {
			t.Errorf("%s: state=%v timer=%v, want FadingOut/0", m.Text(), m.State(), m.StateTimer())
		}
	})

	q.Update(q.Config().FadeOut)
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

func TestClearAllIsIdempotent(t *testing.T) {
	q := newTestQueue(t, Timed{})
	h := q.ShowMessage("x", yellow, 1)

	q.ClearAll()
	q.Update(200 * time.Millisecond)
	q.ClearAll()

	var timer time.Duration
	q.Each(func(m *Message) { timer = m.StateTimer() })
	if timer != 200*time.Millisecond {
		t.Errorf("timer = %v, second ClearAll must not restart the fade", timer)
	}
	q.Update(300 * time.Millisecond)
	if h.Alive() {
		t.Errorf("state = %v, want Dead", h.State())
	}
}

func TestClearAllDuringFadeIn(t *testing.T) {
	q := newTestQueue(t, Timed{})
	h := q.ShowMessage("x", yellow, 1)
	q.Update(100 * time.Millisecond)

	q.ClearAll()
	if h.State() != FadingOut {
		t.Errorf("state = %v, want FadingOut", h.State())
	}
}

func TestFadingMessageReleasesSlot(t *testing.T) {
	q := newTestQueue(t, Manual{})
	q.ShowMessage("old", yellow, 1)
	q.Update(300 * time.Millisecond)

	// Dismiss only the first message.
	q.Each(func(m *Message) { m.dismiss() })
	newer := q.ShowMessage("new", yellow, 1)
	if newer.Position() != 1 {
		t.Fatalf("initial position = %v, want 1", newer.Position())
	}

	q.Update(100 * time.Millisecond)
	if p := newer.Position(); p >= 1 || p <= 0 {
		t.Errorf("position = %v, want sliding from 1 toward 0", p)
	}

	q.Update(q.Config().FadeOut)
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}
	for i := 0; i < 200; i++ {
		q.Update(time.Second / 60)
	}
	if p := newer.Position(); p > 1e-3 {
		t.Errorf("position = %v, want ~0", p)
	}
}

func TestPositionNeverOvershoots(t *testing.T) {
	dts := []time.Duration{
		time.Millisecond,
		time.Second / 60,
		250 * time.Millisecond,
		499 * time.Millisecond,
		time.Second,
		5 * time.Second,
	}
	for _, dt := range dts {
		t.Run(dt.String(), func(t *testing.T) {
			m := newMessage("m", yellow, 1, 7)
			target := 2.0
			for i := 0; i < 50; i++ {
				before := math.Abs(m.position - target)
				m.slideToward(target, dt)
				after := math.Abs(m.position - target)
				if after > before {
					t.Fatalf("tick %d: distance grew %v -> %v", i, before, after)
				}
				if m.position < target {
					t.Fatalf("tick %d: overshot to %v", i, m.position)
				}
			}
		})
	}
}

func TestUpdateNegativeDeltaIsIgnored(t *testing.T) {
	q := newTestQueue(t, Timed{})
	q.ShowMessage("x", yellow, 1)
	q.Update(-time.Second)

	q.Each(func(m *Message) {
		if m.StateTimer() != 0 || m.State() != FadingIn {
			t.Errorf("state=%v timer=%v, want FadingIn/0", m.State(), m.StateTimer())
		}
	})
}

func TestRemovalPreservesOrder(t *testing.T) {
	q := newTestQueue(t, Manual{})
	names := []string{"a", "b", "c", "d", "e"}
	for _, n := range names {
		q.ShowMessage(n, yellow, 1)
	}
	q.Update(300 * time.Millisecond)

	// Fade out b and d only.
	q.Each(func(m *Message) {
		if m.Text() == "b" || m.Text() == "d" {
			m.dismiss()
		}
	})
	q.Update(time.Second)

	var got []string
	q.Each(func(m *Message) { got = append(got, m.Text()) })
	want := []string{"a", "c", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestShowFormattedMessage(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"formats", "Pressed %s", []any{"Space"}, "Pressed Space"},
		{"no args", "plain", nil, "plain"},
		{"missing arg", "Pressed %s and %d", []any{"A"}, "Pressed %s and %d"},
		{"wrong verb", "count %d", []any{"many"}, "count %d"},
		{"extra arg", "hi", []any{1}, "hi"},
		{"marker in arg", "download %s", []any{"100%!"}, "download 100%!"},
		{"marker in template", "done 100%%!", nil, "done 100%!"},
		{"marker in arg with wrong verb", "count %d", []any{"a%!b"}, "count %d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQueue(t, Timed{})
			h := q.ShowFormattedMessage(tt.format, yellow, tt.args...)
			if h.Text() != tt.want {
				t.Errorf("text = %q, want %q", h.Text(), tt.want)
			}
		})
	}
}

func TestSetStrategySwitchesRules(t *testing.T) {
	q := newTestQueue(t, Manual{})
	h := q.ShowMessage("x", yellow, 1)
	q.Update(time.Minute)
	if h.State() != Showing {
		t.Fatalf("state = %v, want Showing", h.State())
	}

	q.SetStrategy(Timed{})
	q.Update(time.Minute)
	if h.State() != FadingOut {
		t.Errorf("state = %v, want FadingOut", h.State())
	}
}

func TestSetConfigValidates(t *testing.T) {
	q := newTestQueue(t, Timed{})
	if err := q.SetConfig(Config{FadeIn: -1}); err == nil {
		t.Fatal("expected error")
	}
	if q.Config() != DefaultConfig() {
		t.Errorf("config changed after rejected SetConfig")
	}
	cfg := Config{FadeIn: time.Second, Show: time.Second, FadeOut: time.Second}
	if err := q.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if q.Config() != cfg {
		t.Errorf("Config = %+v, want %+v", q.Config(), cfg)
	}
}

func TestConcurrentProducers(t *testing.T) {
	q := newTestQueue(t, Manual{})
	r := &recordingRenderer{lineHeight: 10}
	p := NewPresenter(q, r)

	const producers = 8
	const perProducer = 200

	var wg sync.WaitGroup
	done := make(chan struct{})
	frameDone := make(chan struct{})

	go func() {
		defer close(frameDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Update(time.Second / 60)
				p.Render()
			}
		}
	}()

	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				h := q.ShowMessage("event", yellow, 1)
				if s := h.State(); s < FadingIn || s > Dead {
					t.Errorf("undefined state %d", s)
				}
			}
		}(i)
	}
	wg.Wait()
	close(done)
	<-frameDone

	if q.Len() != producers*perProducer {
		t.Fatalf("Len = %d, want %d", q.Len(), producers*perProducer)
	}
	q.Each(func(m *Message) {
		if m.State() != FadingIn && m.State() != Showing {
			t.Errorf("state = %v", m.State())
		}
	})
}
