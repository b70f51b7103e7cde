// Package countdown implements the timer that gates a "resend code" action.
//
// An Emitter computes an absolute deadline when started and, on every tick,
// reports the whole minutes and seconds left. When less than a second
// remains it reports the stop exactly once and re-enables the action
// control it was given.
//
// # Drivers
//
// The emitter does not own a goroutine. Something else delivers ticks:
//
//   - Run drives it from a Clock ticker and honours context cancellation.
//   - A Bubble Tea model schedules tea.Tick commands carrying the run ID
//     (see internal/codeview).
//
// Every Start returns a new run ID and ticks carrying any other ID are
// dropped. This is what makes Clear and restart immediate: a tick already
// queued by the event loop for the previous run is ignored.
//
// # Example
//
//	e := countdown.New(resendButton)
//	err := countdown.Countdown(ctx, e, 30*time.Second, countdown.ListenerFuncs{
//	    Tick: func(m, s int) { fmt.Printf("resend in %02d:%02d\n", m, s) },
//	    Stop: func() { fmt.Println("you can resend now") },
//	})
package countdown
