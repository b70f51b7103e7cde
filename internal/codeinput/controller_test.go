package codeinput

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/smscode/internal/logging"
)

type fakeKeyboard struct {
	shown  int
	hidden int
}

func (k *fakeKeyboard) Show() { k.shown++ }
func (k *fakeKeyboard) Hide() { k.hidden++ }

// typeInto simulates the host appending text to a slot's current content.
func typeInto(c *Controller, slot int, text string) {
	c.TextChanged(slot, c.Slot(slot)+text)
}

func TestSetCodeRoundTrip(t *testing.T) {
	codes := []string{"0000", "1234", "9876", "5050"}

	for _, code := range codes {
		c := New()
		c.SetCode(code)
		if got := c.Code(); got != code {
			t.Errorf("SetCode(%q); Code() = %q", code, got)
		}
		if !c.Complete() {
			t.Errorf("SetCode(%q) should complete the code", code)
		}
	}
}

func TestSetCodeWrongLengthIgnored(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"Empty", ""},
		{"Too short", "123"},
		{"Too long", "12345"},
		{"Way too long", "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetCode("4321")
			c.SetCode(tt.code)
			if got := c.Code(); got != "4321" {
				t.Errorf("SetCode(%q) changed code to %q", tt.code, got)
			}
		})
	}
}

func TestSetCodeCountsRunes(t *testing.T) {
	c := New()
	c.SetCode("١٢٣٤") // Arabic-Indic digits, 4 runes but 8 bytes
	if c.Length() != 4 {
		t.Errorf("Length() = %d, want 4", c.Length())
	}
	if c.Slot(0) != "١" {
		t.Errorf("Slot(0) = %q, want first rune", c.Slot(0))
	}
}

func TestTypingAdvancesFocus(t *testing.T) {
	for slot := 0; slot < LastSlot; slot++ {
		c := New()
		c.Focus(slot)
		typeInto(c, slot, "5")

		if c.Focused() != slot+1 {
			t.Errorf("typing into slot %d: focus = %d, want %d", slot, c.Focused(), slot+1)
		}
		if c.Slot(slot) != "5" {
			t.Errorf("slot %d = %q, want 5", slot, c.Slot(slot))
		}
	}
}

func TestTypingIntoLastSlotKeepsFocus(t *testing.T) {
	c := New()
	c.Focus(LastSlot)
	typeInto(c, LastSlot, "8")

	if c.Focused() != LastSlot {
		t.Errorf("focus = %d, want %d", c.Focused(), LastSlot)
	}
	if c.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", c.Cursor())
	}
}

func TestTypingFullCode(t *testing.T) {
	c := New()
	for _, ch := range []string{"1", "2", "3", "4"} {
		typeInto(c, c.Focused(), ch)
	}

	if got := c.Code(); got != "1234" {
		t.Errorf("Code() = %q, want 1234", got)
	}
	if c.Focused() != LastSlot {
		t.Errorf("focus = %d, want last slot", c.Focused())
	}
}

func TestOvertypeKeepsLastCharacter(t *testing.T) {
	tests := []struct {
		name      string
		slot      int
		text      string
		want      string
		wantFocus int
	}{
		{"Two chars in first slot", 0, "12", "2", 1},
		{"Three chars in second slot", 1, "123", "3", 2},
		{"Two chars in last slot", LastSlot, "45", "5", LastSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Focus(tt.slot)
			c.TextChanged(tt.slot, tt.text)

			if got := c.Slot(tt.slot); got != tt.want {
				t.Errorf("slot %d = %q, want %q", tt.slot, got, tt.want)
			}
			if c.Focused() != tt.wantFocus {
				t.Errorf("focus = %d, want %d", c.Focused(), tt.wantFocus)
			}
		})
	}
}

func TestPasteIntoAnySlotMatchesSetCode(t *testing.T) {
	want := New()
	want.SetCode("2468")

	for slot := 0; slot < SlotCount; slot++ {
		c := New()
		c.Focus(slot)
		c.TextChanged(slot, "2468")

		if c.Slots() != want.Slots() {
			t.Errorf("paste into slot %d: slots = %v, want %v", slot, c.Slots(), want.Slots())
		}
		if c.Focused() != want.Focused() {
			t.Errorf("paste into slot %d: focus = %d, want %d", slot, c.Focused(), want.Focused())
		}
	}
}

func TestOverlongTextTruncated(t *testing.T) {
	c := New()
	c.TextChanged(2, "98765")

	if got := c.Code(); got != "9876" {
		t.Errorf("Code() = %q, want 9876", got)
	}
}

func TestClearingSlotKeepsFocus(t *testing.T) {
	c := New()
	c.SetCode("1234")
	c.Focus(1)
	c.TextChanged(1, "")

	if got := c.Code(); got != "134" {
		t.Errorf("Code() = %q, want 134", got)
	}
	if c.Length() != 3 {
		t.Errorf("Length() = %d, want 3", c.Length())
	}
	if c.Focused() != 1 {
		t.Errorf("focus = %d, want 1", c.Focused())
	}
}

func TestDeletePressedOnEmptySlotMerges(t *testing.T) {
	for slot := 1; slot < SlotCount; slot++ {
		c := New()
		c.SetCode("1234")
		c.TextChanged(slot, "")
		c.Focus(slot)

		if !c.DeletePressed(slot) {
			t.Fatalf("DeletePressed(%d) = false, want true", slot)
		}
		if c.Slot(slot-1) != "" {
			t.Errorf("slot %d = %q, want cleared", slot-1, c.Slot(slot-1))
		}
		if c.Focused() != slot-1 {
			t.Errorf("focus = %d, want %d", c.Focused(), slot-1)
		}
	}
}

func TestDeletePressedFirstSlotExempt(t *testing.T) {
	c := New()
	c.Focus(0)

	if c.DeletePressed(0) {
		t.Error("DeletePressed(0) = true, slot 1 has no predecessor")
	}
	if c.Focused() != 0 {
		t.Errorf("focus = %d, want 0", c.Focused())
	}
}

func TestDeletePressedOnFilledSlotIgnored(t *testing.T) {
	c := New()
	c.SetCode("1234")

	if c.DeletePressed(2) {
		t.Error("DeletePressed on a filled slot should be left to the host")
	}
	if got := c.Code(); got != "1234" {
		t.Errorf("Code() = %q, want unchanged", got)
	}
}

func TestDerivedValuesPublishedEveryEdit(t *testing.T) {
	c := New()

	var lengths []int
	var completes []bool
	c.AddCodeLengthWatcher(func(n int) { lengths = append(lengths, n) })
	c.AddCodeCompleteWatcher(func(done bool) { completes = append(completes, done) })

	typeInto(c, 0, "1")
	c.TextChanged(0, "1") // no change in value, still published
	c.SetCode("1234")
	c.TextChanged(3, "")

	wantLengths := []int{1, 1, 4, 3}
	wantCompletes := []bool{false, false, true, false}

	if len(lengths) != len(wantLengths) {
		t.Fatalf("length publishes = %v, want %v", lengths, wantLengths)
	}
	for i := range wantLengths {
		if lengths[i] != wantLengths[i] {
			t.Errorf("length publish %d = %d, want %d", i, lengths[i], wantLengths[i])
		}
		if completes[i] != wantCompletes[i] {
			t.Errorf("complete publish %d = %v, want %v", i, completes[i], wantCompletes[i])
		}
	}
}

func TestDerivedValuesConsistentAfterEdits(t *testing.T) {
	edits := []struct {
		slot int
		text string
	}{
		{0, "1"}, {1, "2"}, {1, ""}, {3, "9"}, {2, "77"}, {0, "123456"}, {2, ""},
	}

	c := New()
	for _, e := range edits {
		c.TextChanged(e.slot, e.text)

		filled := 0
		for _, s := range c.Slots() {
			if s != "" {
				filled++
			}
		}
		if c.Length() != filled {
			t.Errorf("after %+v: Length() = %d, filled slots = %d", e, c.Length(), filled)
		}
		if c.Complete() != (c.Length() == SlotCount) {
			t.Errorf("after %+v: Complete() = %v with Length() = %d", e, c.Complete(), c.Length())
		}
	}
}

func TestWatcherRemoval(t *testing.T) {
	c := New()

	var first, second int
	removeFirst := c.AddCodeLengthWatcher(func(int) { first++ })
	c.AddCodeLengthWatcher(func(int) { second++ })

	typeInto(c, 0, "1")
	removeFirst()
	typeInto(c, 1, "2")

	if first != 1 {
		t.Errorf("removed watcher called %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining watcher called %d times, want 2", second)
	}
}

func TestInputDoneOnlyOnLastSlot(t *testing.T) {
	c := New()

	done := 0
	c.OnActionDone(func() { done++ })

	for slot := 0; slot < LastSlot; slot++ {
		if c.InputDone(slot) {
			t.Errorf("InputDone(%d) = true, want false", slot)
		}
	}
	if !c.InputDone(LastSlot) {
		t.Error("InputDone(last) = false, want true")
	}
	if done != 1 {
		t.Errorf("done callback called %d times, want 1", done)
	}
}

func TestInputDoneReplacesCallback(t *testing.T) {
	c := New()

	var old, current int
	c.OnActionDone(func() { old++ })
	c.OnActionDone(func() { current++ })
	c.InputDone(LastSlot)

	if old != 0 || current != 1 {
		t.Errorf("old = %d, current = %d; want 0, 1", old, current)
	}
}

func TestHideKeyboardOnLastInput(t *testing.T) {
	kb := &fakeKeyboard{}
	c := New()
	c.HideKeyboardOnLastInput(true, kb)

	typeInto(c, 0, "1")
	typeInto(c, 1, "2")
	typeInto(c, 2, "3")
	if kb.hidden != 0 {
		t.Fatalf("keyboard hidden %d times before last slot", kb.hidden)
	}

	typeInto(c, 3, "4")
	if kb.hidden != 1 {
		t.Errorf("keyboard hidden %d times, want 1", kb.hidden)
	}

	c.TextChanged(3, "")
	if kb.hidden != 1 {
		t.Errorf("clearing last slot should not hide keyboard, hidden = %d", kb.hidden)
	}
}

func TestHideKeyboardDisabled(t *testing.T) {
	kb := &fakeKeyboard{}
	c := New(WithKeyboard(kb))
	c.HideKeyboardOnLastInput(false, nil)

	c.SetCode("1234")
	if kb.hidden != 0 {
		t.Errorf("keyboard hidden %d times with hiding disabled", kb.hidden)
	}
}

func TestFocusShowsKeyboard(t *testing.T) {
	kb := &fakeKeyboard{}
	c := New(WithKeyboard(kb))

	c.Focus(2)
	c.Focus(7) // out of range, ignored

	if c.Focused() != 2 {
		t.Errorf("focus = %d, want 2", c.Focused())
	}
	if kb.shown != 1 {
		t.Errorf("keyboard shown %d times, want 1", kb.shown)
	}
}

func TestInvalidSlotIgnored(t *testing.T) {
	c := New()
	c.TextChanged(-1, "1")
	c.TextChanged(SlotCount, "1")

	if c.Length() != 0 {
		t.Errorf("Length() = %d after invalid slot edits, want 0", c.Length())
	}
	if c.Slot(9) != "" {
		t.Error("Slot(9) should be empty")
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.SetCode("1234")

	var last = -1
	c.AddCodeLengthWatcher(func(n int) { last = n })
	c.Reset()

	if c.Code() != "" || c.Focused() != 0 {
		t.Errorf("after Reset: code = %q, focus = %d", c.Code(), c.Focused())
	}
	if last != 0 {
		t.Errorf("Reset should publish length 0, got %d", last)
	}
}

func TestEditLogNamesSlot(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	c := New()
	c.SetCode("1234")
	c.TextChanged(1, "")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if slot, ok := entries[0].ContextMap()["slot"]; ok {
		t.Errorf("SetCode logged slot %v, want no slot field", slot)
	}
	if slot := entries[1].ContextMap()["slot"]; slot != int64(2) {
		t.Errorf("TextChanged logged slot %v, want 2", slot)
	}
}
