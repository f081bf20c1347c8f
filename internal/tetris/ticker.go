package tetris

import (
	"sync"
	"time"
)

// Ticker is the timer source driving gravity. It starts stopped.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

// NewTicker returns a stopped Ticker backed by time.Ticker.
func NewTicker() Ticker {
	t := time.NewTicker(time.Hour)
	t.Stop()
	return &timeTicker{t: t}
}

func (t *timeTicker) C() <-chan time.Time   { return t.t.C }
func (t *timeTicker) Reset(d time.Duration) { t.t.Reset(d) }
func (t *timeTicker) Stop()                 { t.t.Stop() }

// ManualTicker is a Ticker fired explicitly by the caller. It delivers at
// most one pending tick, and only while running.
type ManualTicker struct {
	mu       sync.Mutex
	ch       chan time.Time
	running  bool
	interval time.Duration
}

// NewManualTicker returns a stopped ManualTicker.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time, 1)}
}

func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

func (m *ManualTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = true
	m.interval = d
}

// Stop halts the ticker and discards a pending tick.
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	select {
	case <-m.ch:
	default:
	}
}

// Fire delivers one tick. Reports false if the ticker is stopped or a
// previous tick has not been received yet.
func (m *ManualTicker) Fire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return false
	}
	select {
	case m.ch <- time.Now():
		return true
	default:
		return false
	}
}

// Running reports whether the ticker is active.
func (m *ManualTicker) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Interval returns the period passed to the last Reset.
func (m *ManualTicker) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}
