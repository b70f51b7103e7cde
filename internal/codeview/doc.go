// Package codeview renders the verification code widget in the terminal.
//
// The widget is a Bubble Tea component: a title, four single-character slots
// driven by codeinput.Controller, and an optional action button (typically
// "Resend code") gated by a countdown.Emitter. Parent models embed a Model,
// forward messages to Update and place View in their own layout.
//
//	w := codeview.New(codeview.Options{
//		Title:       codeview.Label{Text: "Enter the code we sent you"},
//		Action:      codeview.Label{Text: "Resend code"},
//		RepeatAfter: 30 * time.Second,
//	})
//	w.AddCodeCompleteWatcher(func(complete bool) { ... })
//
// The widget emits CodeSubmittedMsg when Enter is pressed on the last slot
// and ActionClickedMsg when the action button is activated.
package codeview
