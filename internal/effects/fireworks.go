// Package effects implements the solve celebration: a short timeline of
// firework rockets that rise from the bottom of the screen and burst into
// particles. Motion is integrated with harmonica projectiles; the timeline
// runs on the game's tick-driven scheduler.
package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Visual characters for rendering
const (
	RocketChar = '|'
	TrailChar  = '.'
	SparkChar  = '*'
	EmberChar  = '+'
	AshChar    = '·'
)

// Config tunes the celebration timeline and burst shape.
type Config struct {
	Count        int           // Rockets per celebration
	Interval     time.Duration // Spacing between rocket launches
	Jitter       time.Duration // Random extra delay added to each launch
	Launch       time.Duration // Time a rocket rises before bursting
	ParticleLife time.Duration // Lifetime of a burst particle
	TeardownPad  time.Duration // Extra time after the last interval before clearing

	Particles int     // Particles per burst
	MinSpeed  float64 // Minimum particle speed in cells per second
	MaxSpeed  float64 // Maximum particle speed in cells per second
	Gravity   float64 // Downward pull on particles in cells per second squared
}

// DefaultConfig returns the standard celebration timeline.
func DefaultConfig() Config {
	return Config{
		Count:        3,
		Interval:     1500 * time.Millisecond,
		Jitter:       500 * time.Millisecond,
		Launch:       1000 * time.Millisecond,
		ParticleLife: 1000 * time.Millisecond,
		TeardownPad:  3000 * time.Millisecond,
		Particles:    20,
		MinSpeed:     12,
		MaxSpeed:     50,
		Gravity:      6,
	}
}

// Duration returns how long a celebration lasts from trigger to teardown.
func (c Config) Duration() time.Duration {
	return time.Duration(c.Count)*c.Interval + c.TeardownPad
}

type rocket struct {
	id    int
	proj  *harmonica.Projectile
	color core.Color
	trail []harmonica.Point
}

type particle struct {
	burst int
	proj  *harmonica.Projectile
	color core.Color
	born  time.Duration
}

// Fireworks is a Celebration that draws onto the game screen.
// It is not safe for concurrent use.
type Fireworks struct {
	cfg   Config
	sched *core.Scheduler
	rng   *rand.Rand
	dt    float64 // Seconds per Step

	width, height int

	generation int // Bumped by Stop so stale timers do nothing
	active     bool
	nextID     int
	rockets    []*rocket
	particles  []*particle
}

// NewFireworks creates an idle effect. fps is the rate at which Step is
// called; sched runs the launch, burst and teardown timers.
func NewFireworks(cfg Config, sched *core.Scheduler, rng *rand.Rand, fps int) *Fireworks {
	if fps <= 0 {
		fps = 60
	}
	return &Fireworks{
		cfg:   cfg,
		sched: sched,
		rng:   rng,
		dt:    harmonica.FPS(fps),
	}
}

// Resize sets the drawing area used for launch positions.
func (f *Fireworks) Resize(width, height int) {
	f.width = width
	f.height = height
}

// Active reports whether a celebration is on screen.
func (f *Fireworks) Active() bool {
	return f.active
}

// Rockets returns the number of rising rockets.
func (f *Fireworks) Rockets() int {
	return len(f.rockets)
}

// Particles returns the number of live burst particles.
func (f *Fireworks) Particles() int {
	return len(f.particles)
}

// Celebrate schedules one full firework timeline and returns immediately.
func (f *Fireworks) Celebrate() {
	f.active = true
	gen := f.generation

	for i := 0; i < f.cfg.Count; i++ {
		delay := time.Duration(i) * f.cfg.Interval
		if f.cfg.Jitter > 0 {
			delay += time.Duration(f.rng.Int63n(int64(f.cfg.Jitter)))
		}
		f.sched.After(delay, func() {
			if gen == f.generation {
				f.launch()
			}
		})
	}

	f.sched.After(f.cfg.Duration(), func() {
		if gen == f.generation {
			f.clear()
		}
	})
}

// Stop removes everything immediately. Timers already scheduled by an
// earlier Celebrate become no-ops.
func (f *Fireworks) Stop() {
	f.generation++
	f.clear()
}

func (f *Fireworks) clear() {
	f.active = false
	f.rockets = nil
	f.particles = nil
}

// launch starts a rocket from a random column at the bottom edge. It rises
// to a point in the upper half of the screen, arriving when Launch elapses.
func (f *Fireworks) launch() {
	w, h := f.area()
	x := float64(w/4 + f.rng.Intn(w/2+1))
	startY := float64(h - 1)
	peakY := float64(f.rng.Intn(h/3 + 1))

	secs := f.cfg.Launch.Seconds()
	if secs <= 0 {
		secs = f.dt
	}
	vel := harmonica.Vector{Y: (peakY - startY) / secs}

	f.nextID++
	r := &rocket{
		id:    f.nextID,
		proj:  harmonica.NewProjectile(f.dt, harmonica.Point{X: x, Y: startY}, vel, harmonica.Vector{}),
		color: core.FireworkPalette[f.rng.Intn(len(core.FireworkPalette))],
	}
	f.rockets = append(f.rockets, r)

	gen := f.generation
	f.sched.After(f.cfg.Launch, func() {
		if gen == f.generation {
			f.burst(r)
		}
	})
}

// burst replaces a rocket with a ring of particles flying outward at
// random angles and speeds.
func (f *Fireworks) burst(r *rocket) {
	if !f.removeRocket(r.id) {
		return
	}
	origin := r.proj.Position()
	gravity := harmonica.Vector{Y: f.cfg.Gravity}
	now := f.sched.Now()

	for i := 0; i < f.cfg.Particles; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := f.cfg.MinSpeed
		if f.cfg.MaxSpeed > f.cfg.MinSpeed {
			speed += f.rng.Float64() * (f.cfg.MaxSpeed - f.cfg.MinSpeed)
		}
		// Cells are about twice as tall as wide.
		vel := harmonica.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed / 2}
		f.particles = append(f.particles, &particle{
			burst: r.id,
			proj:  harmonica.NewProjectile(f.dt, origin, vel, gravity),
			color: r.color,
			born:  now,
		})
	}

	gen := f.generation
	f.sched.After(f.cfg.ParticleLife, func() {
		if gen == f.generation {
			f.expire(r.id)
		}
	})
}

func (f *Fireworks) removeRocket(id int) bool {
	for i, r := range f.rockets {
		if r.id == id {
			f.rockets = append(f.rockets[:i], f.rockets[i+1:]...)
			return true
		}
	}
	return false
}

// expire drops every particle of one burst.
func (f *Fireworks) expire(burst int) {
	kept := f.particles[:0]
	for _, p := range f.particles {
		if p.burst != burst {
			kept = append(kept, p)
		}
	}
	f.particles = kept
}

// Step advances every rocket and particle by one frame.
func (f *Fireworks) Step() {
	for _, r := range f.rockets {
		r.trail = append(r.trail, r.proj.Position())
		if len(r.trail) > 6 {
			r.trail = r.trail[1:]
		}
		r.proj.Update()
	}
	for _, p := range f.particles {
		p.proj.Update()
	}
}

// Render draws rockets with their trails and particles onto dst.
// Particles fade from spark to ash as they age.
func (f *Fireworks) Render(dst *core.Screen) {
	if !f.active {
		return
	}
	for _, r := range f.rockets {
		for _, pt := range r.trail {
			dst.SetColor(round(pt.X), round(pt.Y), TrailChar, core.ColorGray)
		}
		pos := r.proj.Position()
		dst.SetColor(round(pos.X), round(pos.Y), RocketChar, r.color)
	}

	now := f.sched.Now()
	for _, p := range f.particles {
		pos := p.proj.Position()
		dst.SetColor(round(pos.X), round(pos.Y), f.glyph(now-p.born), p.color)
	}
}

func (f *Fireworks) glyph(age time.Duration) rune {
	life := f.cfg.ParticleLife
	switch {
	case life <= 0 || age < life/3:
		return SparkChar
	case age < 2*life/3:
		return EmberChar
	default:
		return AshChar
	}
}

// area returns the drawing area, falling back to a standard terminal.
func (f *Fireworks) area() (int, int) {
	w, h := f.width, f.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func round(v float64) int {
	return int(math.Round(v))
}
