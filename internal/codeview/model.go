package codeview

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/smscode/internal/codeinput"
	"github.com/muurk/smscode/internal/countdown"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Messages emitted to the parent model
type (
	// ActionClickedMsg is sent when the action button is activated.
	ActionClickedMsg struct{}

	// CodeSubmittedMsg is sent when Enter is pressed on the last slot.
	CodeSubmittedMsg struct {
		Code     string
		Complete bool
	}
)

// tickMsg drives the countdown. widget and run identify which countdown the
// tick belongs to.
type tickMsg struct {
	widget int
	run    int
}

// Options configures a code widget
type Options struct {
	Title  Label
	Action Label // Hidden when Action.Text is empty

	// RepeatAfter is the countdown gating the action button. It starts on
	// Init and again after every click. Zero disables the countdown.
	RepeatAfter time.Duration

	HideKeyboardOnLastInput bool

	Clock countdown.Clock // Defaults to countdown.SystemClock
}

// state is shared by every copy of a Model. Bubble Tea passes models by
// value, while the controller callbacks need one place to write to.
type state struct {
	actionEnabled bool
	actionFocused bool
	keyboardShown bool

	onActionClick  func()
	timerListeners []countdown.Listener
}

// SetEnabled gates the action button (countdown.ActionControl).
func (s *state) SetEnabled(enabled bool) { s.actionEnabled = enabled }

// Show and Hide implement codeinput.Keyboard: a hidden keyboard ignores typing.
func (s *state) Show() { s.keyboardShown = true }
func (s *state) Hide() { s.keyboardShown = false }

// OnTick fans countdown ticks out to registered listeners.
func (s *state) OnTick(minutes, seconds int) {
	for _, l := range s.timerListeners {
		l.OnTick(minutes, seconds)
	}
}

// OnTimerStop fans the countdown stop out to registered listeners.
func (s *state) OnTimerStop() {
	for _, l := range s.timerListeners {
		l.OnTimerStop()
	}
}

// Model is the verification code widget: a title, four single-character
// slots and an action button gated by a countdown.
type Model struct {
	id    int
	opts  Options
	input *codeinput.Controller
	timer *countdown.Emitter
	state *state

	slots [codeinput.SlotCount]textinput.Model

	// UI state
	Width int
	Help  help.Model
	Keys  keyMap
}

// New creates a widget with the first slot focused
func New(opts Options) Model {
	st := &state{actionEnabled: true, keyboardShown: true}

	input := codeinput.New(codeinput.WithKeyboard(st))
	input.HideKeyboardOnLastInput(opts.HideKeyboardOnLastInput, st)

	var slots [codeinput.SlotCount]textinput.Model
	for i := range slots {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "·"
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(SubtleColor)
		ti.TextStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true)
		slots[i] = ti
	}

	m := Model{
		id:    nextID(),
		opts:  opts,
		input: input,
		timer: countdown.New(st, countdown.WithClock(opts.Clock)),
		state: st,
		slots: slots,
		Help:  help.New(),
		Keys:  newKeyMap(),
	}
	m, _ = m.sync()
	return m
}

// Init starts cursor blinking and the countdown when RepeatAfter is set
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.RepeatAfter > 0 {
		cmds = append(cmds, m.startCountdown(m.opts.RepeatAfter))
	}
	return tea.Batch(cmds...)
}

// Update handles key presses and countdown ticks
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.widget != m.id {
			return m, nil
		}
		if m.timer.Tick(msg.run) {
			return m, m.tick(msg.run, m.timer.NextTick(countdown.DefaultInterval))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other textinput internals
	var cmd tea.Cmd
	focused := m.input.Focused()
	m.slots[focused], cmd = m.slots[focused].Update(msg)
	return m, cmd
}

// handleKey routes a key press
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		if m.state.actionFocused {
			return m.clickAction()
		}
		return m.inputDone()

	case key.Matches(msg, m.Keys.Resend):
		return m.clickAction()

	case key.Matches(msg, m.Keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.Keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.Keys.Delete):
		return m.deleteBackward()
	}

	if msg.Type == tea.KeyRunes {
		return m.typeRunes(msg.Runes)
	}
	return m, nil
}

// typeRunes appends typed or pasted digits to the focused slot. Anything
// that is not a decimal digit is dropped, like a numeric keyboard would.
func (m Model) typeRunes(runes []rune) (Model, tea.Cmd) {
	if m.state.actionFocused || !m.state.keyboardShown {
		return m, nil
	}

	var digits strings.Builder
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return m, nil
	}

	slot := m.input.Focused()
	m.input.TextChanged(slot, m.input.Slot(slot)+digits.String())
	return m.sync()
}

// deleteBackward merges into the previous slot when the focused one is
// empty, otherwise removes the focused slot's character
func (m Model) deleteBackward() (Model, tea.Cmd) {
	if m.state.actionFocused {
		return m, nil
	}

	slot := m.input.Focused()
	if !m.input.DeletePressed(slot) {
		if text := []rune(m.input.Slot(slot)); len(text) > 0 {
			m.input.TextChanged(slot, string(text[:len(text)-1]))
		}
	}
	// Editing brings the keyboard back
	m.input.Focus(m.input.Focused())
	return m.sync()
}

// moveFocus steps focus across the slots and on to the action button
func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	if m.state.actionFocused {
		m.state.actionFocused = false
		if delta < 0 {
			m.input.Focus(codeinput.LastSlot)
		} else {
			m.input.Focus(0)
		}
		return m.sync()
	}

	next := m.input.Focused() + delta
	switch {
	case next > codeinput.LastSlot:
		if !m.hasAction() {
			return m, nil
		}
		m.state.actionFocused = true
	case next < 0:
		return m, nil
	default:
		m.input.Focus(next)
	}
	return m.sync()
}

// inputDone handles Enter on a slot
func (m Model) inputDone() (Model, tea.Cmd) {
	slot := m.input.Focused()
	if slot != codeinput.LastSlot {
		return m, nil
	}

	m.input.InputDone(slot)
	submitted := CodeSubmittedMsg{Code: m.input.Code(), Complete: m.input.Complete()}
	return m, func() tea.Msg { return submitted }
}

// clickAction activates the action button if it is visible and enabled
func (m Model) clickAction() (Model, tea.Cmd) {
	if !m.hasAction() || !m.state.actionEnabled {
		return m, nil
	}

	if m.state.onActionClick != nil {
		m.state.onActionClick()
	}

	clicked := func() tea.Msg { return ActionClickedMsg{} }
	if m.opts.RepeatAfter > 0 {
		return m, tea.Batch(clicked, m.startCountdown(m.opts.RepeatAfter))
	}
	return m, clicked
}

// sync copies controller state into the slot inputs and moves textinput
// focus to match
func (m Model) sync() (Model, tea.Cmd) {
	var cmd tea.Cmd
	focused := m.input.Focused()
	active := m.state.keyboardShown && !m.state.actionFocused

	for i := range m.slots {
		m.slots[i].SetValue(m.input.Slot(i))
		m.slots[i].CursorEnd()
		if i == focused && active {
			if !m.slots[i].Focused() {
				cmd = m.slots[i].Focus()
			}
		} else {
			m.slots[i].Blur()
		}
	}
	return m, cmd
}

// startCountdown starts a run and delivers its first tick right away
func (m Model) startCountdown(d time.Duration) tea.Cmd {
	run := m.timer.Start(d, m.state)
	first := tickMsg{widget: m.id, run: run}
	return func() tea.Msg { return first }
}

func (m Model) tick(run int, delay time.Duration) tea.Cmd {
	id := m.id
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return tickMsg{widget: id, run: run}
	})
}

func (m Model) hasAction() bool {
	return m.opts.Action.Text != ""
}

// Code returns the entered code
func (m Model) Code() string {
	return m.input.Code()
}

// SetCode fills all slots when code has exactly four characters
func (m Model) SetCode(code string) Model {
	m.input.SetCode(code)
	m, _ = m.sync()
	return m
}

// Reset clears the slots
func (m Model) Reset() Model {
	m.input.Reset()
	m.state.actionFocused = false
	m.state.keyboardShown = true
	m, _ = m.sync()
	return m
}

// AddCodeLengthWatcher subscribes to the code length
func (m Model) AddCodeLengthWatcher(w codeinput.LengthWatcher) func() {
	return m.input.AddCodeLengthWatcher(w)
}

// AddCodeCompleteWatcher subscribes to code completeness
func (m Model) AddCodeCompleteWatcher(w codeinput.CompleteWatcher) func() {
	return m.input.AddCodeCompleteWatcher(w)
}

// OnActionDone sets the callback for Enter on the last slot
func (m Model) OnActionDone(fn func()) {
	m.input.OnActionDone(fn)
}

// OnActionClick sets the callback for the action button
func (m Model) OnActionClick(fn func()) {
	m.state.onActionClick = fn
}

// HideKeyboardOnLastInput stops accepting typing once the last slot is
// filled. Moving focus to a slot accepts typing again.
func (m Model) HideKeyboardOnLastInput(enabled bool) {
	m.input.HideKeyboardOnLastInput(enabled, m.state)
}

// AddTimerListener registers a listener for countdown ticks and stops
func (m Model) AddTimerListener(l countdown.Listener) {
	m.state.timerListeners = append(m.state.timerListeners, l)
}

// StartCountdown disables the action button for d, restarting any running
// countdown. The returned command must be handed back to Bubble Tea.
func (m Model) StartCountdown(d time.Duration) tea.Cmd {
	return m.startCountdown(d)
}

// ClearCountdown stops the countdown and enables the action button
func (m Model) ClearCountdown() {
	m.timer.Clear()
}

// Remaining returns the countdown time left
func (m Model) Remaining() time.Duration {
	return m.timer.Remaining()
}

// CountdownRunning reports whether the action button is gated
func (m Model) CountdownRunning() bool {
	return m.timer.Running()
}

// ActionEnabled reports whether the action button can be clicked
func (m Model) ActionEnabled() bool {
	return m.state.actionEnabled
}

// ActionFocused reports whether focus is on the action button
func (m Model) ActionFocused() bool {
	return m.state.actionFocused
}

// Focused returns the focused slot index
func (m Model) Focused() int {
	return m.input.Focused()
}

// KeyboardShown reports whether typing is accepted
func (m Model) KeyboardShown() bool {
	return m.state.keyboardShown
}
