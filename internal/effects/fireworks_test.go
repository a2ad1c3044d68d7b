package effects

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func newTestFireworks() (*Fireworks, *core.Scheduler) {
	cfg := DefaultConfig()
	cfg.Jitter = 0
	sched := core.NewScheduler()
	f := NewFireworks(cfg, sched, rand.New(rand.NewSource(7)), 60)
	f.Resize(80, 24)
	return f, sched
}

func TestDefaultConfigDuration(t *testing.T) {
	if got := DefaultConfig().Duration(); got != 7500*time.Millisecond {
		t.Errorf("Duration() = %v, expected 7.5s", got)
	}
}

func TestCelebrateTimeline(t *testing.T) {
	f, sched := newTestFireworks()

	f.Celebrate()
	if !f.Active() {
		t.Fatal("Celebrate should activate the effect")
	}
	if f.Rockets() != 0 {
		t.Fatal("no rocket should launch before the scheduler runs")
	}

	tests := []struct {
		advance   time.Duration
		rockets   int
		particles int
		active    bool
	}{
		{0, 1, 0, true},                        // t=0: first launch
		{1000 * time.Millisecond, 0, 20, true}, // t=1000: first burst
		{500 * time.Millisecond, 1, 20, true},  // t=1500: second launch
		{500 * time.Millisecond, 1, 0, true},   // t=2000: first burst expires
		{500 * time.Millisecond, 0, 20, true},  // t=2500: second burst
		{500 * time.Millisecond, 1, 20, true},  // t=3000: third launch
		{1000 * time.Millisecond, 0, 20, true}, // t=4000: third burst
		{1000 * time.Millisecond, 0, 0, true},  // t=5000: all particles gone
		{2500 * time.Millisecond, 0, 0, false}, // t=7500: teardown
	}

	for i, tt := range tests {
		sched.Advance(tt.advance)
		if f.Rockets() != tt.rockets {
			t.Errorf("step %d (t=%v): Rockets() = %d, expected %d", i, sched.Now(), f.Rockets(), tt.rockets)
		}
		if f.Particles() != tt.particles {
			t.Errorf("step %d (t=%v): Particles() = %d, expected %d", i, sched.Now(), f.Particles(), tt.particles)
		}
		if f.Active() != tt.active {
			t.Errorf("step %d (t=%v): Active() = %v, expected %v", i, sched.Now(), f.Active(), tt.active)
		}
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after teardown, expected 0", sched.Pending())
	}
}

func TestCoarseAdvanceKeepsTimeline(t *testing.T) {
	tests := []struct {
		advance   time.Duration
		rockets   int
		particles int
		active    bool
	}{
		{1000 * time.Millisecond, 0, 20, true},
		{2500 * time.Millisecond, 0, 20, true}, // first burst expired, second live
		{3000 * time.Millisecond, 1, 20, true}, // second burst live, third rising
		{5000 * time.Millisecond, 0, 0, true},
		{7500 * time.Millisecond, 0, 0, false},
	}

	for _, tt := range tests {
		f, sched := newTestFireworks()
		f.Celebrate()
		sched.Advance(tt.advance)

		if f.Rockets() != tt.rockets || f.Particles() != tt.particles || f.Active() != tt.active {
			t.Errorf("Advance(%v): rockets=%d particles=%d active=%v, expected %d %d %v",
				tt.advance, f.Rockets(), f.Particles(), f.Active(), tt.rockets, tt.particles, tt.active)
		}
	}
}

func TestJitterStaysWithinInterval(t *testing.T) {
	cfg := DefaultConfig()
	sched := core.NewScheduler()
	f := NewFireworks(cfg, sched, rand.New(rand.NewSource(99)), 60)

	f.Celebrate()
	sched.Advance(cfg.Jitter)
	if f.Rockets() != 1 {
		t.Errorf("Rockets() = %d after max jitter, expected 1", f.Rockets())
	}
}

func TestStopCancelsPendingTimeline(t *testing.T) {
	f, sched := newTestFireworks()

	f.Celebrate()
	sched.Advance(0)
	f.Stop()
	if f.Active() || f.Rockets() != 0 {
		t.Fatal("Stop should clear the effect immediately")
	}

	sched.Advance(10 * time.Second)
	if f.Active() || f.Rockets() != 0 || f.Particles() != 0 {
		t.Error("timers from a stopped celebration must not draw anything")
	}
}

func TestRocketRises(t *testing.T) {
	f, sched := newTestFireworks()
	f.Celebrate()
	sched.Advance(0)

	startY := f.rockets[0].proj.Position().Y
	for i := 0; i < 10; i++ {
		f.Step()
	}
	if y := f.rockets[0].proj.Position().Y; y >= startY {
		t.Errorf("rocket Y = %.2f, expected above start %.2f", y, startY)
	}
}

func TestParticlesSpreadFromBurst(t *testing.T) {
	f, sched := newTestFireworks()
	f.Celebrate()
	sched.Advance(time.Second)
	if len(f.particles) == 0 {
		t.Fatal("first burst should be out one launch after the celebration")
	}

	origin := f.particles[0].proj.Position()
	for i := 0; i < 30; i++ {
		f.Step()
	}
	moved := 0
	for _, p := range f.particles {
		if p.proj.Position() != origin {
			moved++
		}
	}
	if moved != len(f.particles) {
		t.Errorf("%d of %d particles moved", moved, len(f.particles))
	}
}

func TestRender(t *testing.T) {
	f, sched := newTestFireworks()
	screen := core.NewScreen(80, 24)

	f.Render(screen)
	if screen.String() != core.NewScreen(80, 24).String() {
		t.Error("idle fireworks should draw nothing")
	}

	f.Celebrate()
	sched.Advance(0)
	f.Step()
	f.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == RocketChar {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a rocket on screen")
	}
}

func TestGlyphAges(t *testing.T) {
	f, _ := newTestFireworks()
	tests := []struct {
		age  time.Duration
		want rune
	}{
		{0, SparkChar},
		{500 * time.Millisecond, EmberChar},
		{900 * time.Millisecond, AshChar},
	}
	for _, tt := range tests {
		if got := f.glyph(tt.age); got != tt.want {
			t.Errorf("glyph(%v) = %q, expected %q", tt.age, got, tt.want)
		}
	}
}
