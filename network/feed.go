package network

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/toast"
	"github.com/google/uuid"
)

// SessionEvent is something that happened in the (simulated) network session
type SessionEvent struct {
	ID     uuid.UUID
	Player string
	Joined bool
}

func (e SessionEvent) String() string {
	if e.Joined {
		return fmt.Sprintf("%s joined the session", e.Player)
	}
	return fmt.Sprintf("%s left the session", e.Player)
}

// Notifier is the part of a toast queue the feed needs.
type Notifier interface {
	ShowMessage(text string, clr color.RGBA, scale float64) toast.Handle
}

// Feed produces session events on its own goroutine and shows each one as a
// toast. It stands in for router callbacks that arrive off the frame thread.
// All shared fields are protected by mu.
type Feed struct {
	mu sync.Mutex

	notifier Notifier
	interval time.Duration
	players  []string
	next     int
	present  map[string]bool
	sent     int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed creates a stopped feed cycling through the given player names.
func NewFeed(n Notifier, interval time.Duration, players []string) *Feed {
	if len(players) == 0 {
		players = []string{"Player 2", "Player 3", "Player 4"}
	}
	return &Feed{
		notifier: n,
		interval: interval,
		players:  players,
		present:  make(map[string]bool, len(players)),
	}
}

// Start runs the feed in a background goroutine until ctx is done or Stop is called.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	if f.cancel != nil {
		f.mu.Unlock()
		return
	}
	ctx, f.cancel = context.WithCancel(ctx)
	f.done = make(chan struct{})
	done := f.done
	f.mu.Unlock()

	log.Printf("[feed] started, interval=%v", f.interval)

	go func() {
		defer close(done)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[feed] stopped: %v", ctx.Err())
				return
			case <-ticker.C:
				f.Emit()
			}
		}
	}()
}

// Stop cancels the feed and waits for its goroutine to exit.
func (f *Feed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Emit produces the next event and shows it.
func (f *Feed) Emit() SessionEvent {
	f.mu.Lock()
	player := f.players[f.next%len(f.players)]
	f.next++
	joined := !f.present[player]
	f.present[player] = joined
	f.sent++
	f.mu.Unlock()

	evt := SessionEvent{ID: uuid.New(), Player: player, Joined: joined}
	clr := cfg.LightGreen
	if !joined {
		clr = cfg.Orange
	}
	f.notifier.ShowMessage(evt.String(), clr, 1)
	return evt
}

// Sent returns how many events the feed has produced.
func (f *Feed) Sent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}
