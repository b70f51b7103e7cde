// Package countdowntest provides a manual clock for countdown tests.
package countdowntest

import (
	"sync"
	"time"

	"github.com/muurk/smscode/internal/countdown"
)

// Clock is a countdown.Clock whose time only moves when Advance is called.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*ticker
	created chan struct{}
}

// NewClock returns a clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{
		now:     start,
		created: make(chan struct{}, 16),
	}
}

// Now implements countdown.Clock
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker implements countdown.Clock
func (c *Clock) NewTicker(d time.Duration) countdown.Ticker {
	c.mu.Lock()
	t := &ticker{
		clock:    c,
		interval: d,
		next:     c.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()

	select {
	case c.created <- struct{}{}:
	default:
	}
	return t
}

// TickerCreated receives once for every ticker created, so tests can wait
// for a driver goroutine to be ready before advancing.
func (c *Clock) TickerCreated() <-chan struct{} {
	return c.created
}

// Advance moves the clock forward and fires tickers that came due. Like
// time.Ticker, a ticker whose previous tick was not received drops ticks.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
	for _, t := range c.tickers {
		if t.stopped {
			continue
		}
		for !t.next.After(c.now) {
			select {
			case t.ch <- t.next:
			default:
			}
			t.next = t.next.Add(t.interval)
		}
	}
}

type ticker struct {
	clock    *Clock
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  bool
}

func (t *ticker) C() <-chan time.Time {
	return t.ch
}

func (t *ticker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
