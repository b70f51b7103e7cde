package codeinput

import (
	"strings"

	"github.com/muurk/smscode/internal/logging"
)

// SlotCount is the number of characters in a verification code.
const SlotCount = 4

// LastSlot is the index of the final slot.
const LastSlot = SlotCount - 1

// Edit rules, reported to the debug log.
const (
	ruleDistribute = "distribute"
	ruleAdvance    = "advance"
	ruleTruncate   = "truncate"
	ruleLastChar   = "last_char"
	ruleClear      = "clear"
)

// Controller owns the four code slots and the focus between them.
//
// It is not safe for concurrent use. Hosts call it from their UI goroutine
// (the Bubble Tea update loop in this repository).
type Controller struct {
	slots [SlotCount]string
	focus int

	lengthWatchers   subscribers[LengthWatcher]
	completeWatchers subscribers[CompleteWatcher]
	onDone           func()

	keyboard   Keyboard
	hideOnLast bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeyboard attaches the host's input capture.
func WithKeyboard(kb Keyboard) Option {
	return func(c *Controller) {
		c.keyboard = kb
	}
}

// New creates a controller with empty slots and focus on the first slot.
func New(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Code returns the slots concatenated in order. It is shorter than
// SlotCount while any slot is empty.
func (c *Controller) Code() string {
	var b strings.Builder
	for _, s := range c.slots {
		b.WriteString(s)
	}
	return b.String()
}

// SetCode writes a full code across all slots. Codes that are not exactly
// SlotCount characters long are ignored.
func (c *Controller) SetCode(code string) {
	runes := []rune(code)
	if len(runes) != SlotCount {
		return
	}
	c.distribute(runes)
	logging.LogSlotEdit(logging.AllSlots, ruleDistribute, c.Code(), c.focus)
	c.publish()
}

// TextChanged applies the host's new text for a slot. The first matching
// rule wins:
//
//  1. exactly SlotCount characters: a pasted code, spread across all slots
//  2. one character: kept, focus advances unless slot is the last one
//  3. more than SlotCount characters: the first SlotCount are spread
//  4. two or three characters: only the last one typed is kept, then as 2
//  5. empty: the slot is cleared and focus stays
//
// Derived values are published after every call.
func (c *Controller) TextChanged(slot int, text string) {
	if !validSlot(slot) {
		return
	}

	runes := []rune(text)
	var rule string
	switch {
	case len(runes) == SlotCount:
		c.distribute(runes)
		rule = ruleDistribute
	case len(runes) == 1:
		c.fill(slot, text)
		rule = ruleAdvance
	case len(runes) > SlotCount:
		c.distribute(runes[:SlotCount])
		rule = ruleTruncate
	case len(runes) > 0:
		c.fill(slot, string(runes[len(runes)-1]))
		rule = ruleLastChar
	default:
		c.setSlot(slot, "")
		rule = ruleClear
	}

	logging.LogSlotEdit(slot, rule, c.Code(), c.focus)
	c.publish()
}

// DeletePressed handles the delete key going down on a slot. On an empty
// slot with a predecessor it clears the predecessor, moves focus there and
// reports true. Otherwise it does nothing and reports false, leaving the
// host to delete the slot's own character.
func (c *Controller) DeletePressed(slot int) bool {
	if !validSlot(slot) || slot == 0 || c.slots[slot] != "" {
		return false
	}

	c.setSlot(slot-1, "")
	c.focus = slot - 1
	logging.LogSlotEdit(slot-1, ruleClear, c.Code(), c.focus)
	c.publish()
	return true
}

// Focus moves focus to a slot, as a tap on it would, and shows the keyboard.
func (c *Controller) Focus(slot int) {
	if !validSlot(slot) {
		return
	}
	c.focus = slot
	if c.keyboard != nil {
		c.keyboard.Show()
	}
}

// InputDone signals that the user finished input on a slot (Enter).
// Only the last slot triggers the action-done callback; the return value
// reports whether it ran.
func (c *Controller) InputDone(slot int) bool {
	if slot != LastSlot || c.onDone == nil {
		return false
	}
	c.onDone()
	return true
}

// OnActionDone sets the callback for input done on the last slot,
// replacing any previous one.
func (c *Controller) OnActionDone(fn func()) {
	c.onDone = fn
}

// HideKeyboardOnLastInput hides kb whenever the last slot receives a
// character. A nil kb keeps the keyboard already attached.
func (c *Controller) HideKeyboardOnLastInput(enabled bool, kb Keyboard) {
	if kb != nil {
		c.keyboard = kb
	}
	c.hideOnLast = enabled
}

// AddCodeLengthWatcher subscribes to the code length. The returned function
// unsubscribes.
func (c *Controller) AddCodeLengthWatcher(w LengthWatcher) func() {
	return c.lengthWatchers.add(w)
}

// AddCodeCompleteWatcher subscribes to code completeness. The returned
// function unsubscribes.
func (c *Controller) AddCodeCompleteWatcher(w CompleteWatcher) func() {
	return c.completeWatchers.add(w)
}

// Reset clears every slot and focuses the first one.
func (c *Controller) Reset() {
	for i := range c.slots {
		c.slots[i] = ""
	}
	c.focus = 0
	c.publish()
}

// Slot returns the text of one slot, or "" for an invalid index.
func (c *Controller) Slot(i int) string {
	if !validSlot(i) {
		return ""
	}
	return c.slots[i]
}

// Slots returns a copy of all slots.
func (c *Controller) Slots() [SlotCount]string {
	return c.slots
}

// Focused returns the index of the focused slot.
func (c *Controller) Focused() int {
	return c.focus
}

// Cursor returns the cursor position inside the focused slot. The cursor is
// always kept at the end of the slot's text.
func (c *Controller) Cursor() int {
	return len([]rune(c.slots[c.focus]))
}

// Length returns the number of characters across all slots.
func (c *Controller) Length() int {
	return CodeLength(c.slots)
}

// Complete reports whether every slot holds a character.
func (c *Controller) Complete() bool {
	return CodeComplete(c.slots)
}

// CodeLength counts the characters held by slots.
func CodeLength(slots [SlotCount]string) int {
	n := 0
	for _, s := range slots {
		n += len([]rune(s))
	}
	return n
}

// CodeComplete reports whether slots hold a full code.
func CodeComplete(slots [SlotCount]string) bool {
	return CodeLength(slots) == SlotCount
}

func (c *Controller) distribute(runes []rune) {
	for i := 0; i < SlotCount; i++ {
		c.setSlot(i, string(runes[i]))
	}
	c.focus = LastSlot
}

// fill stores a single character and advances focus past it.
func (c *Controller) fill(slot int, ch string) {
	c.setSlot(slot, ch)
	if slot < LastSlot {
		c.focus = slot + 1
	}
}

func (c *Controller) setSlot(slot int, text string) {
	c.slots[slot] = text
	if slot == LastSlot && text != "" && c.hideOnLast && c.keyboard != nil {
		c.keyboard.Hide()
	}
}

func (c *Controller) publish() {
	length := c.Length()
	complete := length == SlotCount
	c.lengthWatchers.each(func(w LengthWatcher) { w(length) })
	c.completeWatchers.each(func(w CompleteWatcher) { w(complete) })
}

func validSlot(i int) bool {
	return i >= 0 && i < SlotCount
}
