package core

import "time"

// Scheduler runs one-shot callbacks against a tick-driven game clock.
// It is not safe for concurrent use; the platform advances it from the
// same goroutine that delivers input. Scheduled callbacks cannot be
// cancelled.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []timer
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current game clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by d.
// A non-positive d runs fn on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	s.pending = append(s.pending, timer{due: s.now + d, seq: s.seq, fn: fn})
}

// Pending returns the number of callbacks that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by dt and runs every callback that has
// come due, earliest first, ties in scheduling order. Each callback sees
// the clock at its own due time, so callbacks it schedules are timed from
// that point and run in the same call if they fall within dt.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now
	if dt > 0 {
		target += dt
	}

	fired := 0
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			s.now = target
			return fired
		}
		t := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		s.now = max(s.now, t.due)
		t.fn()
		fired++
	}
}

// nextDue returns the index of the earliest timer due at or before limit,
// or -1.
func (s *Scheduler) nextDue(limit time.Duration) int {
	best := -1
	for i, t := range s.pending {
		if t.due > limit {
			continue
		}
		if best < 0 || t.due < s.pending[best].due ||
			(t.due == s.pending[best].due && t.seq < s.pending[best].seq) {
			best = i
		}
	}
	return best
}
