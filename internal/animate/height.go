// Package animate drives timed height transitions inside a Bubble Tea
// program. Frames are scheduled with tea.Tick and tagged with the animator
// id and run generation, so frames from a cancelled run fall on the floor.
package animate

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultFPS = 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a running animation.
type FrameMsg struct {
	ID   int
	Gen  uint64
	Time time.Time
}

// DoneMsg is sent exactly once when a run reaches its target. Cancelled runs
// never send it.
type DoneMsg struct {
	ID  int
	Gen uint64
}

type Option func(*Height)

func WithFPS(fps int) Option {
	return func(h *Height) {
		if fps > 0 {
			h.fps = fps
		}
	}
}

// WithClock replaces time.Now as the start time source.
func WithClock(now func() time.Time) Option {
	return func(h *Height) {
		h.now = now
	}
}

// Height animates a single value from a compact resting height toward a
// target.
type Height struct {
	id       int
	gen      uint64
	compact  float64
	from     float64
	to       float64
	value    float64
	start    time.Time
	duration time.Duration
	easing   Easing
	running  bool
	fps      int
	now      func() time.Time
}

func New(compact float64, opts ...Option) Height {
	h := Height{
		id:      nextID(),
		compact: compact,
		value:   compact,
		easing:  EaseOutCubic,
		fps:     defaultFPS,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

func (h Height) ID() int { return h.id }
func (h Height) Gen() uint64 { return h.gen }
func (h Height) Value() float64 { return h.value }
func (h Height) Running() bool { return h.running }
func (h Height) Compact() float64 { return h.compact }

// SetCompact changes the resting height. An idle animator at rest moves
// with it.
func (h *Height) SetCompact(compact float64) {
	if !h.running && h.value == h.compact {
		h.value = compact
	}
	h.compact = compact
}

// Expand starts a new run from the current value to target over d. Any run
// already in flight is superseded and will not complete.
func (h *Height) Expand(target float64, d time.Duration, ease Easing) tea.Cmd {
	h.gen++
	h.from = h.value
	h.to = target
	h.duration = d
	h.start = h.now()
	if ease != nil {
		h.easing = ease
	}

	if d <= 0 || h.from == h.to {
		h.value = target
		h.running = false
		return h.done()
	}

	h.running = true
	return h.tick()
}

// Cancel abandons the current run without completing it and returns the
// value to the compact height.
func (h *Height) Cancel() {
	h.gen++
	h.running = false
	h.value = h.compact
}

func (h *Height) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != h.id || frame.Gen != h.gen || !h.running {
		return nil
	}

	progress := float64(frame.Time.Sub(h.start)) / float64(h.duration)
	if progress >= 1 {
		h.value = h.to
		h.running = false
		return h.done()
	}

	v := h.from + (h.to-h.from)*h.easing(progress)

	// never step backwards, even if the clock does
	if (h.to >= h.from && v > h.value) || (h.to < h.from && v < h.value) {
		h.value = v
	}

	return h.tick()
}

func (h Height) tick() tea.Cmd {
	id, gen := h.id, h.gen
	return tea.Tick(time.Second/time.Duration(h.fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}

func (h Height) done() tea.Cmd {
	id, gen := h.id, h.gen
	return func() tea.Msg {
		return DoneMsg{ID: id, Gen: gen}
	}
}
