package overlay

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskflow/internal/domain"
)

type Field int

const (
	FieldName Field = iota
	FieldDescription
)

// Buffer holds the unsaved name and description while the overlay is open.
type Buffer struct {
	Name        string
	Description string
}

type HeaderKind int

const (
	HeaderView HeaderKind = iota
	HeaderEdit
)

// Header describes which header the overlay should draw. Category is set
// for HeaderView, SaveEnabled for HeaderEdit.
type Header struct {
	Kind        HeaderKind
	Category    domain.Category
	SaveEnabled bool
}

// Session is one open overlay for one task. A Session without a task is
// inactive: every event is ignored and Header/CanSave report nothing.
//
// Session is not safe for concurrent use; it belongs to the UI loop.
type Session struct {
	id     string
	task   *domain.Task
	buffer Buffer
	state  State
	log    zerolog.Logger
}

func NewSession(logger zerolog.Logger) *Session {
	return &Session{log: logger}
}

func (s *Session) Active() bool {
	return s.task != nil
}

// ID identifies the current open session. It changes every time a
// different task is opened and is empty while inactive.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) Task() *domain.Task {
	return s.task
}

func (s *Session) Buffer() Buffer {
	return s.buffer
}

func (s *Session) State() State {
	return s.state
}

// SetTask hands the overlay a task snapshot. A nil task deactivates the
// session. A snapshot of the task already shown only refreshes the snapshot;
// any other task starts a new session in Viewing with a fresh buffer.
func (s *Session) SetTask(task *domain.Task) []Effect {
	if task == nil {
		if !s.Active() {
			return nil
		}
		s.log.Debug().Str("session", s.id).Msg("overlay cleared")
		s.teardown()
		return []Effect{{Kind: EffectCancelAnimation}, {Kind: EffectDismissKeyboard}}
	}

	if s.Active() && s.task.ID == task.ID {
		s.task = task
		return nil
	}

	var effects []Effect
	if s.Active() {
		effects = []Effect{{Kind: EffectCancelAnimation}, {Kind: EffectDismissKeyboard}}
	}

	s.id = uuid.NewString()
	s.task = task
	s.buffer = Buffer{
		Name:        strings.TrimSpace(task.Name),
		Description: strings.TrimSpace(task.DescriptionText()),
	}
	s.state = State{Gen: s.state.Gen + 1}

	s.log.Debug().
		Str("session", s.id).
		Int64("task", task.ID).
		Msg("overlay opened")

	return effects
}

func (s *Session) Focus(Field) []Effect {
	return s.apply(Event{Kind: EventFocus})
}

func (s *Session) Back() []Effect {
	return s.apply(Event{Kind: EventBack})
}

func (s *Session) KeyboardHidden() []Effect {
	return s.apply(Event{Kind: EventKeyboardHidden})
}

func (s *Session) AnimationDone(gen uint64) []Effect {
	return s.apply(Event{Kind: EventAnimationDone, Gen: gen})
}

// RequestClose is the modal-level close (system back). While editing it
// only cancels the edit.
func (s *Session) RequestClose() []Effect {
	return s.apply(Event{Kind: EventRequestClose})
}

func (s *Session) Close() []Effect {
	return s.apply(Event{Kind: EventClose})
}

func (s *Session) SetName(name string) {
	if s.Active() {
		s.buffer.Name = name
	}
}

func (s *Session) SetDescription(description string) {
	if s.Active() {
		s.buffer.Description = description
	}
}

func (s *Session) CanSave() bool {
	if !s.Active() {
		return false
	}
	return IsSaveEligible(s.task, s.buffer.Name, s.buffer.Description)
}

// Save leaves edit mode and asks for the trimmed edit to be persisted. The
// buffer takes the trimmed values right away. It does nothing outside edit
// mode, when the buffer is not eligible, or when the name trims to nothing.
func (s *Session) Save() []Effect {
	if !s.Active() || !s.state.Editing() || !s.CanSave() {
		return nil
	}

	update := domain.NewTaskUpdate(s.task.ID, s.buffer.Name, s.buffer.Description)
	if update.Name == "" {
		return nil
	}
	s.buffer = Buffer{
		Name:        update.Name,
		Description: update.DescriptionText(),
	}

	effects := s.apply(Event{Kind: EventSaved})
	return append(effects, Effect{Kind: EffectPersist, Update: &update})
}

func (s *Session) Header() Header {
	if !s.Active() {
		return Header{}
	}
	if s.state.Editing() {
		return Header{Kind: HeaderEdit, SaveEnabled: s.CanSave()}
	}
	return Header{Kind: HeaderView, Category: s.task.Category}
}

func (s *Session) apply(ev Event) []Effect {
	if !s.Active() {
		return nil
	}

	prev := s.state
	next, effects := Transition(prev, ev)
	s.state = next

	if prev.Mode != next.Mode || len(effects) > 0 {
		s.log.Debug().
			Str("session", s.id).
			Int64("task", s.task.ID).
			Stringer("event", ev.Kind).
			Stringer("from", prev.Mode).
			Stringer("to", next.Mode).
			Msg("overlay transition")
	}

	for _, e := range effects {
		if e.Kind == EffectClose {
			s.teardown()
			break
		}
	}

	return effects
}

func (s *Session) teardown() {
	s.id = ""
	s.task = nil
	s.buffer = Buffer{}
	s.state = State{Gen: s.state.Gen + 1}
}
