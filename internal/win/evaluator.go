// Package win decides whether a filled board is solved and fans the verdict
// out to the notification sink, the celebration effect and the restart
// affordance.
package win

// Verdict is the result of evaluating a board.
type Verdict int

const (
	VerdictIncomplete Verdict = iota // Some slot is still empty
	VerdictSolved                    // Every slot holds its home tile
	VerdictNotSolved                 // Board is full but out of order
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictIncomplete:
		return "incomplete"
	case VerdictSolved:
		return "solved"
	case VerdictNotSolved:
		return "not solved"
	default:
		return "unknown"
	}
}

// Board is the read-only view the evaluator needs.
type Board interface {
	AllSlotsFilled() bool
	IsComplete() bool
}

// Evaluate reads the live board. It has no side effects, so calling it
// twice without an intervening mutation yields the same verdict.
func Evaluate(b Board) Verdict {
	if !b.AllSlotsFilled() {
		return VerdictIncomplete
	}
	if b.IsComplete() {
		return VerdictSolved
	}
	return VerdictNotSolved
}

// Severity is a color hint for a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityFailure
)

// Notifier displays a message to the player.
type Notifier interface {
	Notify(msg string, sev Severity)
}

// Celebration starts a fire-and-forget visual sequence.
type Celebration interface {
	Celebrate()
}

// Messages holds the text shown for each verdict.
type Messages struct {
	Solved    string
	NotSolved string
}

// Evaluator applies verdicts to the outside world.
type Evaluator struct {
	notifier    Notifier
	celebration Celebration
	messages    Messages
	onSolved    func()
	celebrated  bool
}

// NewEvaluator creates an evaluator. Either collaborator may be nil.
func NewEvaluator(n Notifier, c Celebration, m Messages) *Evaluator {
	return &Evaluator{notifier: n, celebration: c, messages: m}
}

// OnSolved registers a hook run on the first solved verdict of a round.
// The game uses it to reveal the restart affordance and record the solve.
func (e *Evaluator) OnSolved(fn func()) {
	e.onSolved = fn
}

// Reset starts a new round, re-arming the celebration.
func (e *Evaluator) Reset() {
	e.celebrated = false
}

// Solved reports whether a solved verdict has been seen this round.
func (e *Evaluator) Solved() bool {
	return e.celebrated
}

// Check evaluates the board and performs the verdict's side effects.
// An incomplete board is left alone: a stale check scheduled before the
// player pulled a tile back out is silently dropped.
func (e *Evaluator) Check(b Board) Verdict {
	v := Evaluate(b)
	switch v {
	case VerdictSolved:
		e.notify(e.messages.Solved, SeveritySuccess)
		if e.celebrated {
			break
		}
		e.celebrated = true
		if e.celebration != nil {
			e.celebration.Celebrate()
		}
		if e.onSolved != nil {
			e.onSolved()
		}
	case VerdictNotSolved:
		e.notify(e.messages.NotSolved, SeverityFailure)
	}
	return v
}

func (e *Evaluator) notify(msg string, sev Severity) {
	if e.notifier != nil {
		e.notifier.Notify(msg, sev)
	}
}
