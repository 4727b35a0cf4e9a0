package overlay

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/domain"
)

func dishesTask() *domain.Task {
	return &domain.Task{ID: 1, Name: "Wash the dishes", Category: domain.CategoryPersonal}
}

func openSession(t *testing.T, task *domain.Task) *Session {
	t.Helper()
	s := NewSession(zerolog.Nop())
	require.Empty(t, s.SetTask(task))
	return s
}

func startGen(t *testing.T, effects []Effect) uint64 {
	t.Helper()
	for _, e := range effects {
		if e.Kind == EffectStartAnimation {
			return e.Gen
		}
	}
	t.Fatalf("no start-animation effect in %v", kinds(effects))
	return 0
}

func TestSession_NilTaskIsNoop(t *testing.T) {
	s := NewSession(zerolog.Nop())

	assert.Empty(t, s.SetTask(nil))
	assert.False(t, s.Active())
	assert.Empty(t, s.Focus(FieldName))
	assert.Empty(t, s.Save())
	assert.Empty(t, s.RequestClose())
	assert.Equal(t, Header{}, s.Header())
	assert.False(t, s.CanSave())
}

// open, focus, animation completes
func TestSession_OpenFocusExpand(t *testing.T) {
	s := openSession(t, dishesTask())
	assert.Equal(t, Viewing, s.State().Mode)
	assert.Equal(t, HeaderView, s.Header().Kind)
	assert.Equal(t, domain.CategoryPersonal, s.Header().Category)

	gen := startGen(t, s.Focus(FieldName))
	assert.Equal(t, Editing, s.State().Mode)

	assert.Empty(t, s.AnimationDone(gen))
	assert.Equal(t, Expanded, s.State().Mode)
	assert.True(t, s.State().Expanded())
}

func TestSession_SaveEligibilityFollowsEdits(t *testing.T) {
	s := openSession(t, dishesTask())
	gen := startGen(t, s.Focus(FieldName))
	s.AnimationDone(gen)

	s.SetName("")
	assert.False(t, s.Header().SaveEnabled)

	s.SetName("Wash the dishes")
	assert.False(t, s.Header().SaveEnabled)

	s.SetName("Wash dishes")
	assert.True(t, s.Header().SaveEnabled)
	assert.Equal(t, HeaderEdit, s.Header().Kind)
}

func TestSession_KeyboardHiddenCancelsEdit(t *testing.T) {
	s := openSession(t, dishesTask())
	gen := startGen(t, s.Focus(FieldDescription))
	s.SetDescription("half typed")

	effects := s.KeyboardHidden()
	assert.Equal(t, Viewing, s.State().Mode)
	assert.Equal(t, []EffectKind{EffectCancelAnimation, EffectDismissKeyboard}, kinds(effects))
	assert.Equal(t, "half typed", s.Buffer().Description)

	s.AnimationDone(gen)
	assert.Equal(t, Viewing, s.State().Mode, "cancelled run must not expand")
	assert.False(t, s.State().Expanded())
}

func TestSession_SaveTrimsAndPersists(t *testing.T) {
	s := openSession(t, dishesTask())
	gen := startGen(t, s.Focus(FieldName))
	s.AnimationDone(gen)

	s.SetName("Wash dishes")
	s.SetDescription("  rinse well  ")

	effects := s.Save()
	assert.Equal(t, Viewing, s.State().Mode)
	assert.Equal(t, []EffectKind{EffectDismissKeyboard, EffectPersist}, kinds(effects))

	persist := effects[len(effects)-1]
	require.NotNil(t, persist.Update)
	assert.Equal(t, int64(1), persist.Update.ID)
	assert.Equal(t, "Wash dishes", persist.Update.Name)
	require.NotNil(t, persist.Update.Description)
	assert.Equal(t, "rinse well", *persist.Update.Description)

	assert.Equal(t, Buffer{Name: "Wash dishes", Description: "rinse well"}, s.Buffer())
}

func TestSession_SaveBlankDescriptionIsAbsent(t *testing.T) {
	task := dishesTask()
	task.Description = domain.StringPtr("old notes")
	s := openSession(t, task)
	s.Focus(FieldDescription)

	s.SetDescription("   ")
	effects := s.Save()
	require.Len(t, effects, 3)

	persist := effects[2]
	require.Equal(t, EffectPersist, persist.Kind)
	assert.Nil(t, persist.Update.Description)
	assert.Equal(t, "", s.Buffer().Description)
}

func TestSession_SaveIneligibleIsNoop(t *testing.T) {
	s := openSession(t, dishesTask())

	s.SetName("Wash dishes")
	assert.Empty(t, s.Save(), "save outside edit mode")

	s.Focus(FieldName)
	s.SetName("Wash the dishes")
	assert.Empty(t, s.Save())
	assert.Equal(t, Editing, s.State().Mode)

	s.SetName("")
	assert.Empty(t, s.Save())
}

// eligible by length, but the trimmed name would be empty
func TestSession_SaveWhitespaceNameIsNoop(t *testing.T) {
	s := openSession(t, dishesTask())
	s.Focus(FieldName)

	s.SetName("   ")
	assert.True(t, s.CanSave())
	assert.Empty(t, s.Save())

	assert.Equal(t, Editing, s.State().Mode)
	assert.Equal(t, "   ", s.Buffer().Name)
	assert.Equal(t, "Wash the dishes", s.Task().Name)
}

func TestSession_BufferSurvivesModeToggles(t *testing.T) {
	s := openSession(t, dishesTask())
	s.Focus(FieldName)
	s.SetName("Wash dishes")
	s.Back()
	s.Focus(FieldName)

	assert.Equal(t, "Wash dishes", s.Buffer().Name)
	assert.True(t, s.CanSave())
}

func TestSession_NewTaskResets(t *testing.T) {
	s := openSession(t, dishesTask())
	gen := startGen(t, s.Focus(FieldName))
	s.AnimationDone(gen)
	s.SetName("something else")
	oldID := s.ID()

	next := &domain.Task{ID: 2, Name: "  Buy milk ", Description: domain.StringPtr(" 2 litres ")}
	effects := s.SetTask(next)

	assert.Equal(t, []EffectKind{EffectCancelAnimation, EffectDismissKeyboard}, kinds(effects))
	assert.Equal(t, Viewing, s.State().Mode)
	assert.False(t, s.State().Expanded())
	assert.False(t, s.State().Full)
	assert.Equal(t, Buffer{Name: "Buy milk", Description: "2 litres"}, s.Buffer())
	assert.NotEqual(t, oldID, s.ID())

	// focus animates again for the new task
	startGen(t, s.Focus(FieldName))
}

func TestSession_SameTaskRefreshKeepsBuffer(t *testing.T) {
	s := openSession(t, dishesTask())
	s.Focus(FieldName)
	s.SetName("Wash dishes")
	id := s.ID()

	refreshed := dishesTask()
	refreshed.Completed = true
	assert.Empty(t, s.SetTask(refreshed))

	assert.Equal(t, id, s.ID())
	assert.Equal(t, Editing, s.State().Mode)
	assert.Equal(t, "Wash dishes", s.Buffer().Name)
	assert.True(t, s.Task().Completed)
}

func TestSession_RequestClose(t *testing.T) {
	s := openSession(t, dishesTask())
	s.Focus(FieldName)
	s.SetName("draft")

	effects := s.RequestClose()
	assert.NotContains(t, kinds(effects), EffectClose)
	assert.True(t, s.Active())
	assert.Equal(t, Viewing, s.State().Mode)
	assert.Equal(t, "draft", s.Buffer().Name)

	effects = s.RequestClose()
	assert.Contains(t, kinds(effects), EffectClose)
	assert.False(t, s.Active())
	assert.Empty(t, s.ID())
	assert.Equal(t, Buffer{}, s.Buffer())
}

func TestSession_CloseDuringAnimation(t *testing.T) {
	s := openSession(t, dishesTask())
	gen := startGen(t, s.Focus(FieldName))

	effects := s.Close()
	assert.Equal(t, []EffectKind{EffectCancelAnimation, EffectDismissKeyboard, EffectClose}, kinds(effects))
	assert.False(t, s.Active())

	assert.Empty(t, s.AnimationDone(gen))
	assert.False(t, s.State().Expanded())

	// reopening the same task must not pick up the old run either
	s.SetTask(dishesTask())
	s.AnimationDone(gen)
	assert.Equal(t, Viewing, s.State().Mode)
}
