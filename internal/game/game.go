// Package game wires the board, drag controller, win evaluator and
// celebration into one playable puzzle round. It is pure logic with no
// Bubble Tea dependency: the platform feeds it gestures, actions and
// ticks and asks it to render into a core.Screen.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/drag"
	"github.com/vovakirdan/tui-jigsaw/internal/effects"
	"github.com/vovakirdan/tui-jigsaw/internal/puzzle"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
	"github.com/vovakirdan/tui-jigsaw/internal/win"
)

// ErrNoPicture is returned by New when neither a picture nor a picker is set.
var ErrNoPicture = errors.New("game: no picture source")

// SolveEvent describes a finished round.
type SolveEvent struct {
	RoundID   string
	PictureID string
	Moves     int
	Duration  time.Duration
	At        time.Time
}

// Status is the message line shown under the HUD.
type Status struct {
	Text     string
	Severity win.Severity
}

// Options configure a new Game.
type Options struct {
	Config  config.JigsawConfig
	Runtime core.RuntimeConfig

	// Picture is used for every round when set. Otherwise Pick chooses a
	// picture for each round.
	Picture registry.Picture
	Pick    func(rng *rand.Rand) (registry.Picture, error)

	// OnSolve is called once per solved round.
	OnSolve func(SolveEvent)
}

// Game is one puzzle instance. It is not safe for concurrent use; the
// platform drives it from a single goroutine.
type Game struct {
	cfg     config.JigsawConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	fixed   registry.Picture
	pick    func(rng *rand.Rand) (registry.Picture, error)
	onSolve func(SolveEvent)

	board     *puzzle.Board
	layout    *Layout
	drag      *drag.Controller
	sched     *core.Scheduler
	fireworks *effects.Fireworks
	eval      *win.Evaluator

	roundID     string
	picture     registry.Picture
	status      Status
	verdict     win.Verdict
	checks      int
	showRestart bool
	startedAt   time.Duration
}

// New creates a game and deals the first round.
func New(opts Options) (*Game, error) {
	if opts.Picture == nil && opts.Pick == nil {
		return nil, ErrNoPicture
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     opts.Config,
		runtime: opts.Runtime,
		rng:     rand.New(rand.NewSource(seed)),
		fixed:   opts.Picture,
		pick:    opts.Pick,
		onSolve: opts.OnSolve,
		board:   puzzle.NewBoard(),
		sched:   core.NewScheduler(),
	}
	g.layout = NewLayout(g.cfg.Board, g.cfg.Messages.Restart, opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	g.drag = drag.NewController(g.board, tileLocator{board: g.board, layout: g.layout}, g.layout.Slots())
	g.fireworks = effects.NewFireworks(fireworksConfig(g.cfg), g.sched, g.rng, opts.Runtime.TickRate)
	g.fireworks.Resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	g.eval = win.NewEvaluator(g, g.fireworks, win.Messages{
		Solved:    g.cfg.Messages.Solved,
		NotSolved: g.cfg.Messages.NotSolved,
	})
	g.eval.OnSolved(g.solved)

	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func fireworksConfig(cfg config.JigsawConfig) effects.Config {
	return effects.Config{
		Count:        cfg.Timing.FireworkCount,
		Interval:     cfg.Timing.FireworkInterval(),
		Jitter:       cfg.Timing.FireworkJitter(),
		Launch:       cfg.Timing.Launch(),
		ParticleLife: cfg.Timing.ParticleLife(),
		TeardownPad:  cfg.Timing.TeardownPad(),
		Particles:    cfg.Effects.Particles,
		MinSpeed:     cfg.Effects.MinSpeed,
		MaxSpeed:     cfg.Effects.MaxSpeed,
		Gravity:      cfg.Effects.Gravity,
	}
}

// Restart reshuffles the tiles into the tray, clears every slot and any
// drag or highlight state, and stops a running celebration.
func (g *Game) Restart() error {
	pic := g.fixed
	if pic == nil {
		p, err := g.pick(g.rng)
		if err != nil {
			return fmt.Errorf("game: pick picture: %w", err)
		}
		pic = p
	}

	g.picture = pic
	g.roundID = uuid.NewString()
	g.board.Shuffle(g.rng)
	g.drag.Reset()
	g.eval.Reset()
	g.fireworks.Stop()
	g.verdict = win.VerdictIncomplete
	g.showRestart = false
	g.startedAt = g.sched.Now()
	g.Notify(g.cfg.Messages.Prompt, win.SeverityInfo)
	return nil
}

// Notify implements win.Notifier.
func (g *Game) Notify(msg string, sev win.Severity) {
	g.status = Status{Text: msg, Severity: sev}
}

// solved runs once per round on the first solved verdict.
func (g *Game) solved() {
	g.showRestart = true
	if g.onSolve != nil {
		g.onSolve(SolveEvent{
			RoundID:   g.roundID,
			PictureID: g.picture.ID(),
			Moves:     g.board.Moves(),
			Duration:  g.elapsed(),
			At:        time.Now(),
		})
	}
}

// HandleGesture feeds a pointer gesture to the restart button or the drag
// controller.
func (g *Game) HandleGesture(gs core.Gesture) drag.Result {
	if gs.Kind == core.GestureStart && g.onRestart(gs.X, gs.Y) {
		//nolint:errcheck // A failed pick keeps the current round on screen.
		g.Restart()
		return drag.Result{
			Gesture: gs,
			Outcome: drag.OutcomeIgnored,
			Tile:    puzzle.Empty,
			From:    puzzle.Nowhere,
			To:      puzzle.Nowhere,
			Evicted: puzzle.Empty,
		}
	}

	res := g.drag.Dispatch(gs)
	if res.Outcome.Committed() && res.Filled {
		g.sched.After(g.cfg.Timing.WinCheckDelay(), g.checkWin)
	}
	return res
}

// onRestart reports whether a press at (x, y) hits the visible restart
// button. Tiles under the pointer win over the button.
func (g *Game) onRestart(x, y int) bool {
	if !g.showRestart || g.drag.State() != drag.StateIdle || !g.layout.Restart().Contains(x, y) {
		return false
	}
	_, _, onTile := tileLocator{board: g.board, layout: g.layout}.TileAt(x, y)
	return !onTile
}

// checkWin re-reads the live board; it may run after a restart, in which
// case the board is no longer full and nothing happens.
func (g *Game) checkWin() {
	g.verdict = g.eval.Check(g.board)
	g.checks++
}

// HandleAction applies a keyboard action. Returns true if handled.
func (g *Game) HandleAction(a core.Action) bool {
	if a == core.ActionRestart && g.showRestart {
		return g.Restart() == nil
	}
	return false
}

// Tick advances game time by one frame, running due timers and effects.
func (g *Game) Tick() {
	g.sched.Advance(g.runtime.TickDuration())
	g.fireworks.Step()
}

// Resize recomputes the layout. An active drag session is discarded with
// the old layout; its tile never left the origin container, so the board
// is unchanged and the release that follows is ignored.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = NewLayout(g.cfg.Board, g.cfg.Messages.Restart, width, height)
	g.drag = drag.NewController(g.board, tileLocator{board: g.board, layout: g.layout}, g.layout.Slots())
	g.fireworks.Resize(width, height)
}

func (g *Game) elapsed() time.Duration {
	return g.sched.Now() - g.startedAt
}

// State returns a summary for the platform layer.
func (g *Game) State() core.GameState {
	placed, _ := g.board.Count()
	return core.GameState{
		Moves:    g.board.Moves(),
		Placed:   placed,
		Solved:   g.eval.Solved(),
		Dragging: g.drag.State() == drag.StateDragging,
		Elapsed:  g.elapsed(),
	}
}

// RoundID returns the unique ID of the current round.
func (g *Game) RoundID() string { return g.roundID }

// Picture returns the picture of the current round.
func (g *Game) Picture() registry.Picture { return g.picture }

// Status returns the current message line.
func (g *Game) Status() Status { return g.status }

// Verdict returns the result of the most recent win check this round.
func (g *Game) Verdict() win.Verdict { return g.verdict }

// Checks returns how many delayed win checks have run, across rounds.
func (g *Game) Checks() int { return g.checks }

// RestartVisible reports whether the restart affordance is offered.
func (g *Game) RestartVisible() bool { return g.showRestart }

// Celebrating reports whether the fireworks are on screen.
func (g *Game) Celebrating() bool { return g.fireworks.Active() }

// Board exposes the board for read access.
func (g *Game) Board() *puzzle.Board { return g.board }

// Layout exposes the current layout.
func (g *Game) Layout() *Layout { return g.layout }

// Drag exposes the drag controller for read access.
func (g *Game) Drag() *drag.Controller { return g.drag }
