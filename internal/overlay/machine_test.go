package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Kind)
	}
	return out
}

func TestTransition_FocusStartsAnimation(t *testing.T) {
	next, effects := Transition(State{}, Event{Kind: EventFocus})

	assert.Equal(t, Editing, next.Mode)
	assert.False(t, next.Expanded())
	require.Len(t, effects, 1)
	assert.Equal(t, EffectStartAnimation, effects[0].Kind)
	assert.Equal(t, next.Gen, effects[0].Gen)
}

func TestTransition_FocusIsIdempotent(t *testing.T) {
	once, _ := Transition(State{}, Event{Kind: EventFocus})
	twice, effects := Transition(once, Event{Kind: EventFocus})

	assert.Equal(t, once, twice)
	assert.Empty(t, effects)

	expanded, _ := Transition(once, Event{Kind: EventAnimationDone, Gen: once.Gen})
	again, effects := Transition(expanded, Event{Kind: EventFocus})
	assert.Equal(t, expanded, again)
	assert.Empty(t, effects)
}

func TestTransition_AnimationDone(t *testing.T) {
	editing, _ := Transition(State{}, Event{Kind: EventFocus})

	t.Run("current generation expands", func(t *testing.T) {
		next, effects := Transition(editing, Event{Kind: EventAnimationDone, Gen: editing.Gen})
		assert.Equal(t, Expanded, next.Mode)
		assert.True(t, next.Full)
		assert.Empty(t, effects)
	})

	t.Run("stale generation ignored", func(t *testing.T) {
		next, _ := Transition(editing, Event{Kind: EventAnimationDone, Gen: editing.Gen - 1})
		assert.Equal(t, editing, next)
	})

	t.Run("ignored while viewing", func(t *testing.T) {
		viewing, _ := Transition(editing, Event{Kind: EventBack})
		next, _ := Transition(viewing, Event{Kind: EventAnimationDone, Gen: editing.Gen})
		assert.Equal(t, Viewing, next.Mode)
		assert.False(t, next.Full)
	})
}

func TestTransition_LeaveEdit(t *testing.T) {
	editing, _ := Transition(State{}, Event{Kind: EventFocus})
	expanded, _ := Transition(editing, Event{Kind: EventAnimationDone, Gen: editing.Gen})

	for _, kind := range []EventKind{EventBack, EventKeyboardHidden, EventSaved, EventRequestClose} {
		t.Run(kind.String()+" from editing", func(t *testing.T) {
			next, effects := Transition(editing, Event{Kind: kind})
			assert.Equal(t, Viewing, next.Mode)
			assert.Equal(t, []EffectKind{EffectCancelAnimation, EffectDismissKeyboard}, kinds(effects))
		})

		t.Run(kind.String()+" from expanded", func(t *testing.T) {
			next, effects := Transition(expanded, Event{Kind: kind})
			assert.Equal(t, Viewing, next.Mode)
			assert.True(t, next.Full)
			assert.Equal(t, []EffectKind{EffectDismissKeyboard}, kinds(effects))
		})
	}
}

func TestTransition_ViewingIgnoresEditExits(t *testing.T) {
	for _, kind := range []EventKind{EventBack, EventKeyboardHidden, EventSaved} {
		next, effects := Transition(State{}, Event{Kind: kind})
		assert.Equal(t, State{}, next, kind.String())
		assert.Empty(t, effects, kind.String())
	}
}

func TestTransition_ExpansionIsOneWay(t *testing.T) {
	editing, _ := Transition(State{}, Event{Kind: EventFocus})
	expanded, _ := Transition(editing, Event{Kind: EventAnimationDone, Gen: editing.Gen})
	viewing, _ := Transition(expanded, Event{Kind: EventBack})

	next, effects := Transition(viewing, Event{Kind: EventFocus})
	assert.Equal(t, Expanded, next.Mode)
	assert.Empty(t, effects, "no second animation once full height was reached")
}

func TestTransition_CancelledExpansionRestarts(t *testing.T) {
	first, _ := Transition(State{}, Event{Kind: EventFocus})
	viewing, _ := Transition(first, Event{Kind: EventKeyboardHidden})
	second, effects := Transition(viewing, Event{Kind: EventFocus})

	require.Len(t, effects, 1)
	assert.Equal(t, EffectStartAnimation, effects[0].Kind)
	assert.Greater(t, second.Gen, first.Gen)

	// the first run finishing late must not expand the second
	next, _ := Transition(second, Event{Kind: EventAnimationDone, Gen: first.Gen})
	assert.Equal(t, Editing, next.Mode)
}

func TestTransition_RequestCloseFromViewingCloses(t *testing.T) {
	next, effects := Transition(State{}, Event{Kind: EventRequestClose})

	assert.Equal(t, Viewing, next.Mode)
	assert.False(t, next.Full)
	assert.Contains(t, kinds(effects), EffectClose)
}

func TestTransition_CloseFromAnyState(t *testing.T) {
	editing, _ := Transition(State{}, Event{Kind: EventFocus})
	expanded, _ := Transition(editing, Event{Kind: EventAnimationDone, Gen: editing.Gen})

	for _, s := range []State{{}, editing, expanded} {
		next, effects := Transition(s, Event{Kind: EventClose})
		assert.Equal(t, Viewing, next.Mode)
		assert.False(t, next.Full)
		assert.Greater(t, next.Gen, s.Gen)
		assert.Equal(t, []EffectKind{EffectCancelAnimation, EffectDismissKeyboard, EffectClose}, kinds(effects))
	}
}
