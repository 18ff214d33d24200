// Package session follows rounds as the game ticks, logging starts and ends
// and recording finished rounds in the session log. Both front-ends (the
// hardware loop and the terminal simulator) feed it every tick result.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-runner/internal/runner"
	"github.com/vovakirdan/lcd-runner/internal/storage"
)

// Tracker turns tick results into round records.
type Tracker struct {
	store   *storage.Session
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	best    int
}

// NewTracker creates a tracker. store may be nil, in which case rounds are
// only logged.
func NewTracker(store *storage.Session, logger *log.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Observe processes one tick. It returns the finished round when the tick
// ended one.
func (t *Tracker) Observe(res runner.TickResult) (storage.Round, bool) {
	switch {
	case res.Started:
		t.started = t.now()
		t.logger.Info("round started")
		return storage.Round{}, false
	case res.Collided:
		return t.finish(res), true
	default:
		return storage.Round{}, false
	}
}

func (t *Tracker) finish(res runner.TickResult) storage.Round {
	now := t.now()
	round := storage.Round{
		Score:    res.Score,
		Distance: res.Distance,
		EndedAt:  now,
	}
	if !t.started.IsZero() {
		round.Duration = now.Sub(t.started)
	}

	if t.store != nil {
		id, err := t.store.SaveRound(round)
		if err != nil {
			t.logger.Warn("could not record round", "error", err)
		}
		round.ID = id
	}

	t.logger.Info("round over",
		"round", round.ID,
		"score", round.Score,
		"distance", round.Distance,
		"duration", round.Duration.Round(time.Millisecond),
	)
	if round.Score > t.best {
		t.best = round.Score
		t.logger.Info("new session best", "score", t.best)
	}
	return round
}

// Best returns the best score seen so far.
func (t *Tracker) Best() int {
	return t.best
}

// Store returns the session log, or nil.
func (t *Tracker) Store() *storage.Session {
	return t.store
}
