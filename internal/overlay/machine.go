// Package overlay holds the task-detail overlay: a view/edit mode machine,
// the save-eligibility rule and a session that ties both to an edit buffer.
// Nothing in here renders; callers execute the returned effects.
package overlay

import (
	"fmt"

	"taskflow/internal/domain"
)

type Mode int

const (
	Viewing Mode = iota
	Editing
	Expanded
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the overlay mode plus the bookkeeping needed for the expansion.
//
// Gen identifies the current expansion run; a completion carrying any other
// value is stale. Full latches once an expansion has finished and stays set
// for the rest of the session, so later edits open at full height without
// animating again.
type State struct {
	Mode Mode
	Gen  uint64
	Full bool
}

// Editing reports whether the overlay is in either edit sub-state.
func (s State) Editing() bool {
	return s.Mode == Editing || s.Mode == Expanded
}

func (s State) Expanded() bool {
	return s.Mode == Expanded
}

type EventKind int

const (
	EventFocus EventKind = iota
	EventBack
	EventKeyboardHidden
	EventAnimationDone
	EventSaved
	EventRequestClose
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventFocus:
		return "focus"
	case EventBack:
		return "back"
	case EventKeyboardHidden:
		return "keyboard-hidden"
	case EventAnimationDone:
		return "animation-done"
	case EventSaved:
		return "saved"
	case EventRequestClose:
		return "request-close"
	case EventClose:
		return "close"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Event struct {
	Kind EventKind
	Gen  uint64 // EventAnimationDone only
}

type EffectKind int

const (
	EffectStartAnimation EffectKind = iota
	EffectCancelAnimation
	EffectDismissKeyboard
	EffectPersist
	EffectClose
)

func (k EffectKind) String() string {
	switch k {
	case EffectStartAnimation:
		return "start-animation"
	case EffectCancelAnimation:
		return "cancel-animation"
	case EffectDismissKeyboard:
		return "dismiss-keyboard"
	case EffectPersist:
		return "persist"
	case EffectClose:
		return "close"
	default:
		return fmt.Sprintf("effect(%d)", int(k))
	}
}

// Effect is a side effect requested by a transition. Gen is set for
// EffectStartAnimation, Update for EffectPersist.
type Effect struct {
	Kind   EffectKind
	Gen    uint64
	Update *domain.TaskUpdate
}

// Transition is the overlay mode machine. It never mutates s.
func Transition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EventFocus:
		if s.Editing() {
			return s, nil
		}
		if s.Full {
			s.Mode = Expanded
			return s, nil
		}
		s.Mode = Editing
		s.Gen++
		return s, []Effect{{Kind: EffectStartAnimation, Gen: s.Gen}}

	case EventAnimationDone:
		if s.Mode != Editing || ev.Gen != s.Gen {
			return s, nil
		}
		s.Mode = Expanded
		s.Full = true
		return s, nil

	case EventBack, EventKeyboardHidden, EventSaved:
		return leaveEdit(s)

	case EventRequestClose:
		if s.Editing() {
			return leaveEdit(s)
		}
		return closed(s)

	case EventClose:
		return closed(s)
	}

	return s, nil
}

func leaveEdit(s State) (State, []Effect) {
	if !s.Editing() {
		return s, nil
	}

	var effects []Effect
	if s.Mode == Editing {
		effects = append(effects, Effect{Kind: EffectCancelAnimation})
	}
	effects = append(effects, Effect{Kind: EffectDismissKeyboard})

	s.Mode = Viewing
	return s, effects
}

func closed(s State) (State, []Effect) {
	effects := []Effect{
		{Kind: EffectCancelAnimation},
		{Kind: EffectDismissKeyboard},
		{Kind: EffectClose},
	}
	// keep the generation counting up so a completion from the closed
	// session can never match a run started after a reopen
	return State{Gen: s.Gen + 1}, effects
}
