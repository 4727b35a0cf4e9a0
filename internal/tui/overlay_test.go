package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/animate"
	"taskflow/internal/config"
	"taskflow/internal/domain"
	"taskflow/internal/keyboard"
	"taskflow/internal/overlay"
	"taskflow/internal/theme"
)

type overlayFixture struct {
	t         *testing.T
	o         *overlayModel
	kb        *keyboard.Signal
	persisted []domain.TaskUpdate
	completed map[int64]bool
	removed   []int64
}

func newOverlayFixture(t *testing.T) *overlayFixture {
	t.Helper()

	f := &overlayFixture{
		t:         t,
		kb:        keyboard.NewSignal(),
		completed: make(map[int64]bool),
	}
	hooks := overlayHooks{
		persist: func(u domain.TaskUpdate) tea.Cmd {
			f.persisted = append(f.persisted, u)
			return nil
		},
		setCompleted: func(id int64, c bool) tea.Cmd {
			f.completed[id] = c
			return nil
		},
		remove: func(id int64) tea.Cmd {
			f.removed = append(f.removed, id)
			return nil
		},
	}

	cfg := config.OverlayConfig{
		CompactHeight:  10,
		ExpandDuration: 300 * time.Millisecond,
		Easing:         "ease-out-cubic",
		FPS:            60,
	}
	o := newOverlayModel(cfg, f.kb, theme.NewStyles(theme.DefaultTheme()), hooks, zerolog.Nop())
	o.setSize(80, 30)
	f.o = &o

	t.Cleanup(func() { f.o.close() })
	return f
}

func (f *overlayFixture) press(msg tea.KeyMsg) tea.Cmd {
	return f.o.update(msg)
}

// finishAnimation sends a frame past the end of the run in flight and
// delivers the completion it produces.
func (f *overlayFixture) finishAnimation() {
	f.t.Helper()
	require.True(f.t, f.o.anim.Running())

	frame := animate.FrameMsg{
		ID:   f.o.anim.ID(),
		Gen:  f.o.anim.Gen(),
		Time: time.Now().Add(f.o.cfg.ExpandDuration),
	}
	cmd := f.o.update(frame)
	require.NotNil(f.t, cmd)
	require.False(f.t, f.o.anim.Running())

	done, ok := cmd().(animate.DoneMsg)
	require.True(f.t, ok)
	f.o.update(done)
}

func (f *overlayFixture) mode() overlay.Mode {
	return f.o.session.State().Mode
}

func TestOverlay_UnknownEasingFallsBack(t *testing.T) {
	cfg := config.OverlayConfig{CompactHeight: 10, ExpandDuration: time.Second, Easing: "bounce"}
	o := newOverlayModel(cfg, keyboard.NewSignal(), theme.NewStyles(theme.DefaultTheme()), overlayHooks{}, zerolog.Nop())

	require.NotNil(t, o.easing)
	assert.Equal(t, animate.EaseOutCubic(0.5), o.easing(0.5))
}

func TestOverlay_OpenStartsInViewing(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "  Buy milk ", "2 liters"))

	require.True(t, f.o.active())
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.Equal(t, "Buy milk", f.o.nameInput.Value())
	assert.Equal(t, "2 liters", f.o.descInput.Value())
	assert.Equal(t, 10, f.o.rows())
	assert.False(t, f.kb.Visible())

	h := f.o.session.Header()
	assert.Equal(t, overlay.HeaderView, h.Kind)
	assert.Equal(t, domain.CategoryErrand, h.Category)
}

func TestOverlay_FocusExpandsAndShowsKeyboard(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))

	assert.Equal(t, overlay.Editing, f.mode())
	assert.True(t, f.kb.Visible())
	assert.True(t, f.o.anim.Running())
	assert.True(t, f.o.nameInput.Focused())

	f.finishAnimation()

	assert.Equal(t, overlay.Expanded, f.mode())
	assert.True(t, f.o.session.State().Full)
	assert.Equal(t, 30, f.o.rows())
}

func TestOverlay_TypeAndSave(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", "2 liters"))

	f.press(keyRunes("e"))
	f.finishAnimation()

	// unchanged buffer cannot be saved
	f.press(keyType(tea.KeyCtrlS))
	assert.Empty(t, f.persisted)
	assert.Equal(t, overlay.Expanded, f.mode())
	assert.False(t, f.o.session.Header().SaveEnabled)

	f.press(keyRunes(" now"))
	assert.Equal(t, "Buy milk now", f.o.session.Buffer().Name)
	assert.True(t, f.o.session.Header().SaveEnabled)

	f.press(keyType(tea.KeyCtrlS))

	require.Len(t, f.persisted, 1)
	assert.Equal(t, int64(1), f.persisted[0].ID)
	assert.Equal(t, "Buy milk now", f.persisted[0].Name)
	assert.Equal(t, "2 liters", f.persisted[0].DescriptionText())

	assert.Equal(t, overlay.Viewing, f.mode())
	assert.False(t, f.kb.Visible())
	assert.True(t, f.o.active())
}

func TestOverlay_ClearingDescriptionSavesAbsent(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", "x"))

	f.press(keyRunes("d"))
	require.True(t, f.o.descInput.Focused())
	f.press(keyType(tea.KeyBackspace))
	assert.Equal(t, "", f.o.session.Buffer().Description)

	f.press(keyType(tea.KeyCtrlS))

	require.Len(t, f.persisted, 1)
	assert.Nil(t, f.persisted[0].Description)
}

func TestOverlay_EscCancelsEditThenCloses(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))
	f.press(keyRunes("q")) // text, not close
	assert.Equal(t, "Buy milkq", f.o.session.Buffer().Name)

	f.press(keyType(tea.KeyEsc))
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.True(t, f.o.active())
	assert.False(t, f.o.anim.Running())
	// unsaved text survives leaving edit mode
	assert.Equal(t, "Buy milkq", f.o.session.Buffer().Name)

	cmd := f.press(keyType(tea.KeyEsc))
	assert.False(t, f.o.active())
	assert.Contains(t, runCmd(cmd), tea.Msg(overlayClosedMsg{taskID: 1}))
	assert.Empty(t, f.persisted)
}

func TestOverlay_BackCancelsAnimation(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))
	stale := animate.DoneMsg{ID: f.o.anim.ID(), Gen: f.o.anim.Gen()}

	f.press(keyType(tea.KeyCtrlB))
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.Equal(t, 10, f.o.rows())

	f.o.update(stale)
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.False(t, f.o.session.State().Full)
}

func TestOverlay_RefocusAfterExpansionSkipsAnimation(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))
	f.finishAnimation()
	f.press(keyType(tea.KeyCtrlB))
	require.Equal(t, overlay.Viewing, f.mode())
	assert.Equal(t, 30, f.o.rows())

	f.press(keyRunes("d"))
	assert.Equal(t, overlay.Expanded, f.mode())
	assert.False(t, f.o.anim.Running())
}

func TestOverlay_KeyboardHiddenLeavesEdit(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))
	sub := f.o.sub
	require.NotNil(t, sub)

	f.press(keyRunes("e"))
	f.press(keyType(tea.KeyCtrlK))
	assert.False(t, f.kb.Visible())

	// the subscription saw the keyboard come up and go away
	assert.Equal(t, keyboard.Shown, <-sub.C())
	assert.Equal(t, keyboard.Hidden, <-sub.C())

	f.o.update(keyboardMsg{session: f.o.session.ID(), visibility: keyboard.Hidden})
	assert.Equal(t, overlay.Viewing, f.mode())
}

func TestOverlay_RefocusOutrunsQueuedHidden(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))
	f.press(keyType(tea.KeyEsc))
	require.Equal(t, overlay.Viewing, f.mode())
	require.False(t, f.kb.Visible())

	// back into edit before the dismissal reaches the overlay
	f.press(keyRunes("d"))
	require.True(t, f.kb.Visible())

	f.o.update(keyboardMsg{session: f.o.session.ID(), visibility: keyboard.Hidden})
	assert.Equal(t, overlay.Editing, f.mode())
	assert.True(t, f.o.descInput.Focused())
}

func TestOverlay_IgnoresOtherSessionKeyboard(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))
	f.press(keyRunes("e"))

	assert.Nil(t, f.o.update(keyboardMsg{session: "elsewhere", visibility: keyboard.Hidden}))
	assert.Equal(t, overlay.Editing, f.mode())
}

func TestOverlay_SwitchTaskResetsSession(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))
	first := f.o.session.ID()
	oldSub := f.o.sub

	f.press(keyRunes("e"))
	f.press(keyRunes("!"))

	f.o.open(sampleTask(2, "Call mom", "evening"))

	assert.NotEqual(t, first, f.o.session.ID())
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.Equal(t, "Call mom", f.o.session.Buffer().Name)
	assert.Equal(t, "Call mom", f.o.nameInput.Value())
	assert.False(t, f.kb.Visible())

	// old subscription is released
	for range oldSub.C() {
	}
	_, ok := <-oldSub.C()
	assert.False(t, ok)
}

func TestOverlay_ReopenSameTaskKeepsBuffer(t *testing.T) {
	f := newOverlayFixture(t)
	task := sampleTask(1, "Buy milk", "")
	f.o.open(task)
	id := f.o.session.ID()

	f.press(keyRunes("e"))
	f.press(keyRunes("!"))

	refreshed := *task
	refreshed.Completed = true
	f.o.open(&refreshed)

	assert.Equal(t, id, f.o.session.ID())
	assert.Equal(t, "Buy milk!", f.o.session.Buffer().Name)
	assert.True(t, f.o.session.Task().Completed)
}

func TestOverlay_SyncClosesWhenTaskGone(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.o.sync([]*domain.Task{sampleTask(1, "Buy oat milk", "")})
	require.True(t, f.o.active())
	assert.Equal(t, "Buy oat milk", f.o.session.Task().Name)
	assert.Equal(t, "Buy milk", f.o.session.Buffer().Name)

	cmd := f.o.sync([]*domain.Task{sampleTask(2, "Other", "")})
	assert.False(t, f.o.active())
	assert.Contains(t, runCmd(cmd), tea.Msg(overlayClosedMsg{taskID: 1}))
}

func TestOverlay_MenuActions(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("m"))
	require.True(t, f.o.menuOpen)
	f.press(keyType(tea.KeyEnter))
	assert.False(t, f.o.menuOpen)
	assert.Equal(t, map[int64]bool{1: true}, f.completed)

	f.press(keyRunes("m"))
	f.press(keyRunes("j"))
	f.press(keyType(tea.KeyEnter))
	assert.Equal(t, []int64{1}, f.removed)
	assert.False(t, f.o.active())
}

func TestOverlay_CloseWhileAnimating(t *testing.T) {
	f := newOverlayFixture(t)
	f.o.open(sampleTask(1, "Buy milk", ""))

	f.press(keyRunes("e"))
	stale := animate.DoneMsg{ID: f.o.anim.ID(), Gen: f.o.anim.Gen()}

	f.press(keyType(tea.KeyCtrlW))
	assert.False(t, f.o.active())
	assert.False(t, f.kb.Visible())
	assert.Nil(t, f.o.sub)

	f.o.open(sampleTask(1, "Buy milk", ""))
	f.o.update(stale)
	assert.Equal(t, overlay.Viewing, f.mode())
	assert.False(t, f.o.session.State().Full)
}

func TestOverlay_View(t *testing.T) {
	f := newOverlayFixture(t)
	backdrop := "list line 1\nlist line 2"
	assert.Equal(t, backdrop, f.o.view(backdrop))

	f.o.open(sampleTask(1, "Buy milk", ""))
	out := f.o.view(backdrop)
	assert.Contains(t, out, "errand")
	assert.Contains(t, out, "No description")

	f.press(keyRunes("e"))
	out = f.o.view(backdrop)
	assert.Contains(t, out, "← back")
	assert.Contains(t, out, "Save")
}
