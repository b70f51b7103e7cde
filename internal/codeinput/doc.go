// Package codeinput implements the input state machine behind a four-slot
// verification code field.
//
// A Controller holds one character per slot and tracks which slot has focus.
// Hosts report what happened to a slot (TextChanged, DeletePressed, Focus,
// InputDone) and the controller decides where the text goes and where focus
// moves next:
//
//   - typing a character fills the slot and advances focus
//   - typing over a filled slot keeps only the newest character
//   - pasting four or more characters spreads the first four over all slots
//   - delete on an empty slot clears the previous slot and focuses it
//
// After every edit the code length and completeness are recomputed from the
// slots and published to subscribers:
//
//	c := codeinput.New()
//	stop := c.AddCodeCompleteWatcher(func(done bool) {
//	    submit.SetEnabled(done)
//	})
//	defer stop()
//
//	c.TextChanged(c.Focused(), "7")
//
// Invalid input is never an error. Codes of the wrong length passed to
// SetCode are ignored and overlong slot text is truncated.
package codeinput
