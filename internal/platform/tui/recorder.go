package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/game"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
	"github.com/vovakirdan/tui-jigsaw/internal/transport/feed"
	"github.com/vovakirdan/tui-jigsaw/internal/win"
)

// SolveSaver persists finished rounds.
type SolveSaver interface {
	SaveSolve(solve storage.Solve) (int64, error)
}

// Publisher receives round events for spectators.
type Publisher interface {
	Publish(ev feed.Event)
}

// Recorder reports what happens in one player's rounds: solves go to the
// history, every event goes to the log and the spectator feed. Any of its
// collaborators may be nil.
type Recorder struct {
	session string
	store   SolveSaver
	feed    Publisher
	logger  *log.Logger
}

// NewRecorder creates a recorder for the given session name ("local" or the
// SSH user).
func NewRecorder(session string, store SolveSaver, pub Publisher, logger *log.Logger) *Recorder {
	if session == "" {
		session = "local"
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{session: session, store: store, feed: pub, logger: logger}
}

// Session returns the session name events are tagged with.
func (r *Recorder) Session() string { return r.session }

// RoundStarted announces a freshly dealt round.
func (r *Recorder) RoundStarted(roundID, pictureID string) {
	r.logger.Debug("round started", "session", r.session, "round", roundID, "picture", pictureID)
	r.publish(feed.Event{
		Type:      feed.EventRoundStarted,
		Session:   r.session,
		RoundID:   roundID,
		PictureID: pictureID,
	})
}

// Verdict reports a win check that found the board full.
func (r *Recorder) Verdict(roundID, pictureID string, v win.Verdict, moves int) {
	if v == win.VerdictIncomplete {
		return
	}
	r.logger.Info("verdict", "session", r.session, "round", roundID, "verdict", v, "moves", moves)
	r.publish(feed.Event{
		Type:      feed.EventVerdict,
		Session:   r.session,
		RoundID:   roundID,
		PictureID: pictureID,
		Moves:     moves,
		Verdict:   v.String(),
	})
}

// Solved stores and announces a solved round. It has the game.Options
// OnSolve signature.
func (r *Recorder) Solved(ev game.SolveEvent) {
	r.logger.Info("solved",
		"session", r.session,
		"picture", ev.PictureID,
		"moves", ev.Moves,
		"duration", ev.Duration,
	)

	if r.store != nil {
		_, err := r.store.SaveSolve(storage.Solve{
			SolveID:   ev.RoundID,
			Session:   r.session,
			PictureID: ev.PictureID,
			Moves:     ev.Moves,
			Duration:  ev.Duration,
			CreatedAt: ev.At,
		})
		if err != nil {
			r.logger.Error("save solve", "round", ev.RoundID, "error", err)
		}
	}

	r.publish(feed.Event{
		Type:       feed.EventSolved,
		Session:    r.session,
		RoundID:    ev.RoundID,
		PictureID:  ev.PictureID,
		Moves:      ev.Moves,
		DurationMs: ev.Duration.Milliseconds(),
		At:         ev.At,
	})
}

func (r *Recorder) publish(ev feed.Event) {
	if r.feed != nil {
		r.feed.Publish(ev)
	}
}

// History adapts an optional store to the recorder and scoreboard
// interfaces. A nil store yields nil interfaces rather than interfaces
// holding a nil pointer.
func History(store *storage.Store) (SolveSaver, SolveSource) {
	if store == nil {
		return nil, nil
	}
	return store, store
}
