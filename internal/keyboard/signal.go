// Package keyboard tracks whether text entry is active (the "keyboard" is
// up) and broadcasts visibility changes to scoped subscribers.
package keyboard

import "sync"

type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

func (v Visibility) String() string {
	if v == Shown {
		return "shown"
	}
	return "hidden"
}

const subscriberBuffer = 4

// Signal is a process-wide keyboard visibility source. It is safe for
// concurrent use.
type Signal struct {
	mu      sync.Mutex
	visible bool
	subs    map[*Subscription]struct{}
}

func NewSignal() *Signal {
	return &Signal{subs: make(map[*Subscription]struct{})}
}

var global = NewSignal()

// Default returns the process-wide signal.
func Default() *Signal {
	return global
}

func (s *Signal) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Show marks the keyboard visible and notifies subscribers if it was hidden.
func (s *Signal) Show() {
	s.set(true)
}

// Dismiss marks the keyboard hidden and notifies subscribers if it was
// visible.
func (s *Signal) Dismiss() {
	s.set(false)
}

func (s *Signal) set(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visible == visible {
		return
	}
	s.visible = visible

	v := Hidden
	if visible {
		v = Shown
	}
	for sub := range s.subs {
		sub.deliver(v)
	}
}

// Subscribe registers a new subscriber. The caller must Unsubscribe when
// the owning scope ends.
func (s *Signal) Subscribe() *Subscription {
	sub := &Subscription{
		signal: s,
		ch:     make(chan Visibility, subscriberBuffer),
	}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	return sub
}

// Subscription receives visibility changes until Unsubscribe.
type Subscription struct {
	signal *Signal
	ch     chan Visibility
	once   sync.Once
}

// C is closed by Unsubscribe.
func (sub *Subscription) C() <-chan Visibility {
	return sub.ch
}

// Unsubscribe stops delivery and closes C. Safe to call more than once.
func (sub *Subscription) Unsubscribe() {
	sub.once.Do(func() {
		s := sub.signal
		s.mu.Lock()
		delete(s.subs, sub)
		close(sub.ch)
		s.mu.Unlock()
	})
}

// deliver never blocks; when the buffer is full the oldest value is
// dropped. Callers hold the signal lock.
func (sub *Subscription) deliver(v Visibility) {
	for {
		select {
		case sub.ch <- v:
			return
		default:
		}
		select {
		case <-sub.ch:
		default:
		}
	}
}
