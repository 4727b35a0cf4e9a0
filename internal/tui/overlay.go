package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"taskflow/internal/animate"
	"taskflow/internal/config"
	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/keyboard"
	"taskflow/internal/overlay"
	"taskflow/internal/theme"
)

// overlayHooks are the host callbacks the overlay fires for work it does not
// own. Each returns the command that performs it.
type overlayHooks struct {
	persist      func(update domain.TaskUpdate) tea.Cmd
	setCompleted func(taskID int64, completed bool) tea.Cmd
	remove       func(taskID int64) tea.Cmd
}

type menuItem int

const (
	menuToggleComplete menuItem = iota
	menuDelete
)

var menuItems = []menuItem{menuToggleComplete, menuDelete}

// overlayModel is the task detail sheet drawn over the task list. The mode
// logic lives in overlay.Session; this type executes its effects and owns
// the widgets.
type overlayModel struct {
	session  *overlay.Session
	keyboard *keyboard.Signal
	sub      *keyboard.Subscription
	taskID   int64

	anim   animate.Height
	runGen uint64 // session generation of the run anim is playing
	cfg    config.OverlayConfig
	easing animate.Easing

	nameInput textinput.Model
	descInput textarea.Model
	focused   overlay.Field

	menuOpen   bool
	menuCursor int

	keys   overlayKeyMap
	help   help.Model
	styles *theme.Styles
	hooks  overlayHooks
	log    zerolog.Logger

	width  int
	height int
}

func newOverlayModel(cfg config.OverlayConfig, kb *keyboard.Signal, styles *theme.Styles, hooks overlayHooks, logger zerolog.Logger) overlayModel {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 200
	ni.Prompt = ""

	di := textarea.New()
	di.Placeholder = "Add a description"
	di.CharLimit = 1000
	di.ShowLineNumbers = false
	di.Prompt = ""
	di.SetHeight(3)

	if cfg.CompactHeight <= 0 {
		cfg.CompactHeight = 12
	}

	var opts []animate.Option
	if cfg.FPS > 0 {
		opts = append(opts, animate.WithFPS(cfg.FPS))
	}

	easing, err := animate.EasingByName(cfg.Easing)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to ease-out-cubic")
		easing = animate.EaseOutCubic
	}

	return overlayModel{
		session:   overlay.NewSession(logger),
		keyboard:  kb,
		anim:      animate.New(float64(cfg.CompactHeight), opts...),
		cfg:       cfg,
		easing:    easing,
		nameInput: ni,
		descInput: di,
		keys:      defaultOverlayKeyMap(),
		help:      newHelp(styles),
		styles:    styles,
		hooks:     hooks,
		log:       logger,
	}
}

func (o *overlayModel) active() bool {
	return o.session.Active()
}

// open shows task in the overlay. Reopening the task already shown only
// refreshes its snapshot.
func (o *overlayModel) open(task *domain.Task) tea.Cmd {
	if task == nil {
		return o.close()
	}
	prevID := o.session.ID()

	// the previous session's subscription ends before its effects run
	if o.sub != nil && task.ID != o.taskID {
		o.sub.Unsubscribe()
		o.sub = nil
	}

	cmd := o.run(o.session.SetTask(task))
	if o.session.ID() == prevID {
		return cmd
	}

	o.taskID = task.ID
	o.resetWidgets()
	o.anim.Cancel()

	o.sub = o.keyboard.Subscribe()
	return tea.Batch(cmd, waitForKeyboardCmd(o.sub, o.session.ID()))
}

// sync hands the overlay a fresh snapshot after a reload. A task that is
// gone closes the overlay.
func (o *overlayModel) sync(tasks []*domain.Task) tea.Cmd {
	if !o.active() {
		return nil
	}
	for _, t := range tasks {
		if t.ID == o.taskID {
			o.session.SetTask(t)
			return nil
		}
	}
	return o.close()
}

// close tears the overlay down from the outside, without a user action.
func (o *overlayModel) close() tea.Cmd {
	if !o.active() {
		return nil
	}
	cmd := o.run(o.session.SetTask(nil))
	return tea.Batch(cmd, o.release())
}

func (o *overlayModel) setSize(width, height int) {
	o.width = width
	o.height = height
	o.anim.SetCompact(float64(o.compactRows()))

	w := width - 8
	if w < 20 {
		w = 20
	}
	o.nameInput.Width = w
	o.descInput.SetWidth(w)
}

func (o *overlayModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case animate.FrameMsg:
		return o.anim.Update(msg)

	case animate.DoneMsg:
		if msg.ID != o.anim.ID() || msg.Gen != o.anim.Gen() {
			return nil
		}
		return o.run(o.session.AnimationDone(o.runGen))

	case keyboardMsg:
		if msg.session == "" || msg.session != o.session.ID() {
			return nil
		}
		var cmd tea.Cmd
		// a field refocused since this was sent shows the keyboard again
		if msg.visibility == keyboard.Hidden && !o.keyboard.Visible() {
			cmd = o.run(o.session.KeyboardHidden())
		}
		if o.sub == nil {
			return cmd
		}
		return tea.Batch(cmd, waitForKeyboardCmd(o.sub, msg.session))

	case tea.KeyMsg:
		if !o.active() {
			return nil
		}
		if o.menuOpen {
			return o.handleMenuKey(msg)
		}
		if o.session.State().Editing() {
			return o.handleEditKey(msg)
		}
		return o.handleViewKey(msg)
	}

	return nil
}

func (o *overlayModel) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, o.keys.EditName):
		return o.focusField(overlay.FieldName)

	case key.Matches(msg, o.keys.EditDescription):
		return o.focusField(overlay.FieldDescription)

	case key.Matches(msg, o.keys.Menu):
		o.menuOpen = true
		o.menuCursor = 0
		return nil

	case key.Matches(msg, o.keys.Close):
		return o.run(o.session.Close())

	case key.Matches(msg, o.keys.RequestClose):
		return o.run(o.session.RequestClose())
	}
	return nil
}

func (o *overlayModel) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, o.keys.Save):
		return o.run(o.session.Save())

	case key.Matches(msg, o.keys.Back):
		return o.run(o.session.Back())

	case key.Matches(msg, o.keys.Cancel):
		return o.run(o.session.RequestClose())

	case key.Matches(msg, o.keys.HideKeyboard):
		// reported back through the subscription
		o.keyboard.Dismiss()
		return nil

	case key.Matches(msg, o.keys.Close):
		return o.run(o.session.Close())

	case key.Matches(msg, o.keys.NextField):
		if o.focused == overlay.FieldName {
			return o.focusField(overlay.FieldDescription)
		}
		return o.focusField(overlay.FieldName)
	}

	var cmd tea.Cmd
	switch o.focused {
	case overlay.FieldName:
		o.nameInput, cmd = o.nameInput.Update(msg)
		o.session.SetName(o.nameInput.Value())
	case overlay.FieldDescription:
		o.descInput, cmd = o.descInput.Update(msg)
		o.session.SetDescription(o.descInput.Value())
	}
	return cmd
}

func (o *overlayModel) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, o.keys.MenuUp):
		if o.menuCursor > 0 {
			o.menuCursor--
		}

	case key.Matches(msg, o.keys.MenuDown):
		if o.menuCursor < len(menuItems)-1 {
			o.menuCursor++
		}

	case key.Matches(msg, o.keys.MenuSelect):
		o.menuOpen = false
		return o.selectMenuItem(menuItems[o.menuCursor])

	case key.Matches(msg, o.keys.Menu), key.Matches(msg, o.keys.RequestClose):
		o.menuOpen = false
	}
	return nil
}

func (o *overlayModel) selectMenuItem(item menuItem) tea.Cmd {
	task := o.session.Task()
	if task == nil {
		return nil
	}

	switch item {
	case menuToggleComplete:
		if o.hooks.setCompleted != nil {
			return o.hooks.setCompleted(task.ID, !task.Completed)
		}

	case menuDelete:
		var cmd tea.Cmd
		if o.hooks.remove != nil {
			cmd = o.hooks.remove(task.ID)
		}
		return tea.Batch(o.run(o.session.Close()), cmd)
	}
	return nil
}

// focusField puts the cursor in a field, which raises the keyboard and
// enters edit mode.
func (o *overlayModel) focusField(f overlay.Field) tea.Cmd {
	o.focused = f

	var cmd tea.Cmd
	switch f {
	case overlay.FieldName:
		o.descInput.Blur()
		cmd = o.nameInput.Focus()
	case overlay.FieldDescription:
		o.nameInput.Blur()
		cmd = o.descInput.Focus()
	}

	o.keyboard.Show()
	return tea.Batch(cmd, o.run(o.session.Focus(f)))
}

// run executes the side effects of a session transition in order.
func (o *overlayModel) run(effects []overlay.Effect) tea.Cmd {
	var cmds []tea.Cmd

	for _, e := range effects {
		switch e.Kind {
		case overlay.EffectStartAnimation:
			o.runGen = e.Gen
			cmds = append(cmds, o.anim.Expand(float64(o.fullRows()), o.cfg.ExpandDuration, o.easing))

		case overlay.EffectCancelAnimation:
			o.anim.Cancel()

		case overlay.EffectDismissKeyboard:
			o.nameInput.Blur()
			o.descInput.Blur()
			o.keyboard.Dismiss()

		case overlay.EffectPersist:
			if e.Update == nil {
				continue
			}
			o.syncInputs()
			o.log.Debug().
				Int64("task", e.Update.ID).
				Msg("persisting overlay edit")
			if o.hooks.persist != nil {
				cmds = append(cmds, o.hooks.persist(*e.Update))
			}

		case overlay.EffectClose:
			cmds = append(cmds, o.release())
		}
	}

	return tea.Batch(cmds...)
}

// release ends the keyboard subscription and reports the close to the host.
func (o *overlayModel) release() tea.Cmd {
	if o.sub != nil {
		o.sub.Unsubscribe()
		o.sub = nil
	}
	o.menuOpen = false
	o.nameInput.Blur()
	o.descInput.Blur()

	taskID := o.taskID
	o.taskID = 0
	return func() tea.Msg {
		return overlayClosedMsg{taskID: taskID}
	}
}

func (o *overlayModel) resetWidgets() {
	o.menuOpen = false
	o.menuCursor = 0
	o.focused = overlay.FieldName
	o.nameInput.Blur()
	o.descInput.Blur()
	o.syncInputs()
}

// syncInputs copies the session buffer into the widgets.
func (o *overlayModel) syncInputs() {
	buf := o.session.Buffer()
	o.nameInput.SetValue(buf.Name)
	o.nameInput.CursorEnd()
	o.descInput.SetValue(buf.Description)
}

func (o *overlayModel) compactRows() int {
	rows := o.cfg.CompactHeight
	if o.height > 0 && rows > o.height {
		rows = o.height
	}
	return rows
}

func (o *overlayModel) fullRows() int {
	if o.height <= 0 {
		return o.compactRows()
	}
	return o.height
}

// rows is the current sheet height in terminal rows.
func (o *overlayModel) rows() int {
	if o.session.State().Full {
		return o.fullRows()
	}
	rows := int(math.Round(o.anim.Value()))
	if rows < o.compactRows() {
		rows = o.compactRows()
	}
	if rows > o.fullRows() {
		rows = o.fullRows()
	}
	return rows
}

// view draws the sheet anchored to the bottom of backdrop.
func (o *overlayModel) view(backdrop string) string {
	if !o.active() {
		return backdrop
	}

	rows := o.rows()
	panel := o.renderPanel(rows)

	lines := strings.Split(backdrop, "\n")
	keep := o.height - lipgloss.Height(panel)
	if keep < 0 {
		keep = 0
	}
	if keep > len(lines) {
		keep = len(lines)
	}

	var b strings.Builder
	for i := 0; i < keep; i++ {
		b.WriteString(o.styles.Backdrop.Render(ansi.Strip(lines[i])))
		b.WriteString("\n")
	}
	// pad so the sheet sits on the bottom edge
	for i := keep; i < o.height-lipgloss.Height(panel); i++ {
		b.WriteString("\n")
	}
	b.WriteString(panel)
	return b.String()
}

func (o *overlayModel) renderPanel(rows int) string {
	task := o.session.Task()
	width := o.width - 2
	if width < 24 {
		width = 24
	}

	var b strings.Builder
	b.WriteString(o.renderHeader(width - 4))
	b.WriteString("\n\n")

	editing := o.session.State().Editing()

	b.WriteString(o.styles.FieldLabel.Render("Name"))
	b.WriteString("\n")
	if editing {
		b.WriteString(o.nameInput.View())
	} else {
		b.WriteString(o.styles.GetCompletionStyle(task.Completed).Render(display.GetCompletionIcon(task.Completed)))
		b.WriteString(" ")
		b.WriteString(o.styles.FieldValue.Render(o.session.Buffer().Name))
	}
	b.WriteString("\n\n")

	b.WriteString(o.styles.FieldLabel.Render("Description"))
	b.WriteString("\n")
	switch desc := o.session.Buffer().Description; {
	case editing:
		b.WriteString(o.descInput.View())
	case desc == "":
		b.WriteString(o.styles.FieldMuted.Render("No description"))
	default:
		b.WriteString(o.styles.FieldValue.Render(desc))
	}
	b.WriteString("\n")

	if task.DueDate != nil {
		b.WriteString("\n")
		b.WriteString(o.styles.FieldLabel.Render("Due "))
		b.WriteString(o.styles.FieldValue.Render(display.FormatDueDate(task.DueDate)))
		b.WriteString("\n")
	}

	if o.menuOpen {
		b.WriteString("\n")
		b.WriteString(o.renderMenu(task))
		b.WriteString("\n")
	}

	bindings := o.keys.viewHelp()
	if editing {
		bindings = o.keys.editHelp()
	}
	b.WriteString("\n")
	b.WriteString(o.help.ShortHelpView(bindings))

	// border takes two rows
	inner := rows - 2
	if inner < 1 {
		inner = 1
	}
	body := b.String()
	if lines := strings.Split(body, "\n"); len(lines) > inner {
		body = strings.Join(lines[:inner], "\n")
	}

	return o.styles.OverlayPanel.
		Width(width).
		Height(inner).
		Render(body)
}

func (o *overlayModel) renderHeader(width int) string {
	h := o.session.Header()

	var left, right string
	switch h.Kind {
	case overlay.HeaderEdit:
		left = o.styles.OverlayBack.Render("← back")
		if h.SaveEnabled {
			right = o.styles.SaveEnabled.Render("Save")
		} else {
			right = o.styles.SaveDisabled.Render("Save")
		}
	default:
		left = o.styles.GetCategoryStyle(h.Category).Render(display.CategoryLabel(h.Category))
		right = o.styles.OverlayMenu.Render("⋯")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return o.styles.OverlayHeader.Render(left + strings.Repeat(" ", gap) + right)
}

func (o *overlayModel) renderMenu(task *domain.Task) string {
	var b strings.Builder
	for i, item := range menuItems {
		label := ""
		switch item {
		case menuToggleComplete:
			label = "Mark complete"
			if task.Completed {
				label = "Mark open"
			}
		case menuDelete:
			label = "Delete task"
		}

		prefix := "  "
		if i == o.menuCursor {
			prefix = "▶ "
		}
		b.WriteString(o.styles.OverlayMenu.Render(prefix + label))
		if i < len(menuItems)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
