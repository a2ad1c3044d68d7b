package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(300*time.Millisecond, func() { order = append(order, "win") })
	s.After(100*time.Millisecond, func() { order = append(order, "first") })
	s.After(100*time.Millisecond, func() { order = append(order, "second") })

	if fired := s.Advance(50 * time.Millisecond); fired != 0 {
		t.Fatalf("Advance(50ms) fired %d callbacks, expected 0", fired)
	}
	if fired := s.Advance(250 * time.Millisecond); fired != 3 {
		t.Fatalf("Advance(250ms) fired %d callbacks, expected 3", fired)
	}

	expected := []string{"first", "second", "win"}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], name)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerNestedCallbacks(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.After(10*time.Millisecond, func() {
		count++
		s.After(0, func() { count++ })
		s.After(time.Second, func() { count++ })
	})

	s.Advance(10 * time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d after first advance, expected 2", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("count = %d after second advance, expected 3", count)
	}
}

func TestSchedulerNestedTimersUseParentDueTime(t *testing.T) {
	tests := []struct {
		name    string
		step    time.Duration
		steps   int
		firedAt time.Duration
	}{
		{"single coarse advance", 2 * time.Second, 1, 1010 * time.Millisecond},
		{"frame ticks", 16 * time.Millisecond, 125, 1010 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler()
			var at []time.Duration

			s.After(10*time.Millisecond, func() {
				at = append(at, s.Now())
				s.After(time.Second, func() { at = append(at, s.Now()) })
			})
			for i := 0; i < tt.steps; i++ {
				s.Advance(tt.step)
			}

			if len(at) != 2 {
				t.Fatalf("fired %d callbacks, expected 2 (pending %d)", len(at), s.Pending())
			}
			if at[0] != 10*time.Millisecond {
				t.Errorf("parent saw clock %v, expected 10ms", at[0])
			}
			if at[1] != tt.firedAt {
				t.Errorf("nested timer saw clock %v, expected %v", at[1], tt.firedAt)
			}
			if s.Now() != tt.step*time.Duration(tt.steps) {
				t.Errorf("Now() = %v after advancing, expected %v", s.Now(), tt.step*time.Duration(tt.steps))
			}
		})
	}
}

func TestSchedulerClock(t *testing.T) {
	s := NewScheduler()
	s.Advance(16 * time.Millisecond)
	s.Advance(-5 * time.Millisecond) // ignored
	s.After(0, nil)                  // ignored

	if s.Now() != 16*time.Millisecond {
		t.Errorf("Now() = %v, expected 16ms", s.Now())
	}
	if s.Pending() != 0 {
		t.Errorf("nil callbacks should not be scheduled")
	}
}
