package tetris

import "time"

// DefaultInterval is the gravity period.
const DefaultInterval = time.Second

// LoopState is the state of the gravity loop.
type LoopState int

const (
	LoopStopped LoopState = iota
	LoopRunning
	LoopPaused
)

func (s LoopState) String() string {
	switch s {
	case LoopStopped:
		return "stopped"
	case LoopRunning:
		return "running"
	case LoopPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Scheduler owns the ticker and the loop state. While not running the
// ticker is stopped, so no tick is observable.
type Scheduler struct {
	ticker   Ticker
	interval time.Duration
	state    LoopState
}

// NewScheduler creates a stopped scheduler. A non-positive interval falls
// back to DefaultInterval.
func NewScheduler(t Ticker, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.Stop()
	return &Scheduler{ticker: t, interval: interval}
}

// Start arms the ticker from the stopped or paused state.
func (s *Scheduler) Start() bool {
	if s.state == LoopRunning {
		return false
	}
	s.ticker.Reset(s.interval)
	s.state = LoopRunning
	return true
}

// Pause disarms the ticker while running.
func (s *Scheduler) Pause() bool {
	if s.state != LoopRunning {
		return false
	}
	s.ticker.Stop()
	s.state = LoopPaused
	return true
}

// Resume re-arms the ticker from the paused state.
func (s *Scheduler) Resume() bool {
	if s.state != LoopPaused {
		return false
	}
	return s.Start()
}

// Stop disarms the ticker from any state.
func (s *Scheduler) Stop() {
	s.ticker.Stop()
	s.state = LoopStopped
}

// State returns the loop state.
func (s *Scheduler) State() LoopState { return s.state }

// Interval returns the gravity period.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// C returns the tick channel.
func (s *Scheduler) C() <-chan time.Time { return s.ticker.C() }
