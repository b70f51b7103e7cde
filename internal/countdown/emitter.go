package countdown

import (
	"fmt"
	"time"

	"github.com/muurk/smscode/internal/logging"
)

// DefaultInterval is the tick period of a countdown.
const DefaultInterval = time.Second

// State is the countdown's position in its Idle/Running cycle.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Listener is told about every tick and about the end of a countdown.
type Listener interface {
	OnTick(minutes, seconds int)
	OnTimerStop()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Tick func(minutes, seconds int)
	Stop func()
}

// OnTick implements Listener
func (l ListenerFuncs) OnTick(minutes, seconds int) {
	if l.Tick != nil {
		l.Tick(minutes, seconds)
	}
}

// OnTimerStop implements Listener
func (l ListenerFuncs) OnTimerStop() {
	if l.Stop != nil {
		l.Stop()
	}
}

// ActionControl is the control a countdown gates, typically a "resend code"
// button. It is disabled while a countdown runs.
type ActionControl interface {
	SetEnabled(enabled bool)
}

// ActionFunc adapts a function to ActionControl.
type ActionFunc func(enabled bool)

// SetEnabled implements ActionControl
func (f ActionFunc) SetEnabled(enabled bool) {
	f(enabled)
}

// Emitter counts down to a deadline and reports the remaining time on each
// tick. Ticks come from a driver (Run, or a UI event loop) and carry the run
// ID returned by Start; ticks from an earlier run are dropped, so once Clear
// or Start returns no listener hears from the old run again.
//
// Emitter is not safe for concurrent use.
type Emitter struct {
	clock    Clock
	action   ActionControl
	listener Listener

	state    State
	started  time.Time
	deadline time.Time
	runID    int
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Emitter) {
		if c != nil {
			e.clock = c
		}
	}
}

// New creates an idle emitter gating action. action may be nil.
func New(action ActionControl, opts ...Option) *Emitter {
	e := &Emitter{
		clock:  SystemClock,
		action: action,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a countdown of d, replacing any countdown in progress, and
// disables the action control. It returns the run ID drivers must pass to
// Tick.
func (e *Emitter) Start(d time.Duration, l Listener) int {
	e.runID++
	e.listener = l
	e.started = e.clock.Now()
	e.deadline = e.started.Add(d)
	e.state = StateRunning
	e.setEnabled(false)

	logging.LogCountdown("start", e.runID, d.Milliseconds())
	return e.runID
}

// Clear stops the countdown and enables the action control immediately.
func (e *Emitter) Clear() {
	if e.state == StateRunning {
		logging.LogCountdown("clear", e.runID, e.Remaining().Milliseconds())
	}
	e.state = StateIdle
	e.runID++
	e.setEnabled(true)
}

// Tick processes one tick of run runID. While at least a second remains the
// listener receives the remaining minutes and seconds. Below one second the
// countdown ends: the action control is enabled and OnTimerStop is called.
// Tick reports whether the driver should keep ticking.
func (e *Emitter) Tick(runID int) bool {
	if e.state != StateRunning || runID != e.runID {
		return false
	}

	remaining := e.deadline.Sub(e.clock.Now())
	if remaining < time.Second {
		e.state = StateIdle
		e.setEnabled(true)
		logging.LogCountdown("stop", runID, remaining.Milliseconds())
		if e.listener != nil {
			e.listener.OnTimerStop()
		}
		return false
	}

	e.setEnabled(false)
	logging.LogCountdown("tick", runID, remaining.Milliseconds())
	if e.listener != nil {
		minutes, seconds := Split(remaining)
		e.listener.OnTick(minutes, seconds)
	}

	// The listener may have cleared or restarted the countdown.
	return e.state == StateRunning && e.runID == runID
}

// Remaining returns the time left, or zero when idle.
func (e *Emitter) Remaining() time.Duration {
	if e.state != StateRunning {
		return 0
	}
	remaining := e.deadline.Sub(e.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Running reports whether a countdown is in progress.
func (e *Emitter) Running() bool {
	return e.state == StateRunning
}

// State returns the current state.
func (e *Emitter) State() State {
	return e.state
}

// RunID returns the ID of the current (or last) run.
func (e *Emitter) RunID() int {
	return e.runID
}

// NextTick returns the delay until the next tick of a driver ticking every
// interval from Start. Delays are measured from Start rather than from the
// previous tick so late ticks do not push the schedule back.
func (e *Emitter) NextTick(interval time.Duration) time.Duration {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if e.state != StateRunning {
		return interval
	}
	elapsed := e.clock.Now().Sub(e.started)
	if elapsed < 0 {
		return interval
	}
	return interval - elapsed%interval
}

func (e *Emitter) setEnabled(enabled bool) {
	if e.action != nil {
		e.action.SetEnabled(enabled)
	}
}

// Split breaks a duration into whole minutes and the seconds left over.
// Minutes are not wrapped at an hour: 61m30s is (61, 30).
func Split(d time.Duration) (minutes, seconds int) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return int(ms / 60000), int((ms / 1000) % 60)
}

// Format renders a duration as mm:ss using Split.
func Format(d time.Duration) string {
	minutes, seconds := Split(d)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
