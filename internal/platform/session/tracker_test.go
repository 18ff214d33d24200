package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-runner/internal/runner"
	"github.com/vovakirdan/lcd-runner/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, *bytes.Buffer, *time.Time) {
	t.Helper()
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tr := NewTracker(store, logger)
	tr.now = func() time.Time { return now }
	return tr, &buf, &now
}

func TestTrackerRecordsRound(t *testing.T) {
	tr, buf, now := newTestTracker(t)

	if _, done := tr.Observe(runner.TickResult{Started: true, Playing: true}); done {
		t.Fatal("Start should not finish a round")
	}
	*now = now.Add(4 * time.Second)
	if _, done := tr.Observe(runner.TickResult{Playing: true, Distance: 39, Score: 4}); done {
		t.Fatal("Play tick should not finish a round")
	}

	round, done := tr.Observe(runner.TickResult{Collided: true, Distance: 40, Score: 5})
	if !done {
		t.Fatal("Collision should finish the round")
	}
	if round.ID != 1 || round.Score != 5 || round.Distance != 40 {
		t.Errorf("Round = %+v", round)
	}
	if round.Duration != 4*time.Second {
		t.Errorf("Duration = %v, expected 4s", round.Duration)
	}

	best, err := tr.Store().Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 5 || tr.Best() != 5 {
		t.Errorf("Best = %d/%d, expected 5", best, tr.Best())
	}

	out := buf.String()
	for _, want := range []string{"round started", "round over", "new session best"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log missing %q:\n%s", want, out)
		}
	}
}

func TestTrackerBestOnlyImproves(t *testing.T) {
	tr, buf, _ := newTestTracker(t)

	tr.Observe(runner.TickResult{Started: true})
	tr.Observe(runner.TickResult{Collided: true, Score: 7})
	buf.Reset()

	tr.Observe(runner.TickResult{Started: true})
	round, _ := tr.Observe(runner.TickResult{Collided: true, Score: 3})

	if round.ID != 2 {
		t.Errorf("Round number = %d, expected 2", round.ID)
	}
	if tr.Best() != 7 {
		t.Errorf("Best() = %d, expected 7", tr.Best())
	}
	if strings.Contains(buf.String(), "new session best") {
		t.Error("Worse round reported as a new best")
	}
}

func TestTrackerWithoutStore(t *testing.T) {
	tr := NewTracker(nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))

	tr.Observe(runner.TickResult{Started: true})
	round, done := tr.Observe(runner.TickResult{Collided: true, Score: 2, Distance: 17})
	if !done || round.ID != 0 || round.Score != 2 {
		t.Errorf("Round = %+v, done = %v", round, done)
	}
}
