package storage

import (
	"testing"
	"time"
)

func openTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionStartsEmpty(t *testing.T) {
	s := openTestSession(t)

	best, err := s.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Best() = %d, expected 0", best)
	}

	rounds, err := s.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected no rounds, got %d", len(rounds))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := openTestSession(t)
	b := openTestSession(t)

	if _, err := a.SaveRound(Round{Score: 5, Distance: 40}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	best, err := b.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Second session sees rounds from the first: best = %d", best)
	}
}

func TestSessionSaveAndRetrieve(t *testing.T) {
	s := openTestSession(t)
	ended := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rounds := []Round{
		{Score: 3, Distance: 30, Duration: 3 * time.Second, EndedAt: ended},
		{Score: 12, Distance: 100, Duration: 10 * time.Second, EndedAt: ended.Add(time.Minute)},
		{Score: 3, Distance: 31, Duration: 3100 * time.Millisecond, EndedAt: ended.Add(2 * time.Minute)},
		{Score: 0, Distance: 2, Duration: 200 * time.Millisecond, EndedAt: ended.Add(3 * time.Minute)},
	}
	for i, r := range rounds {
		id, err := s.SaveRound(r)
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if id != int64(i+1) {
			t.Errorf("Round number = %d, expected %d", id, i+1)
		}
	}

	top, err := s.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}

	// Score descending, longer round first on ties
	wantIDs := []int64{2, 3, 1}
	for i, id := range wantIDs {
		if top[i].ID != id {
			t.Errorf("TopRounds()[%d].ID = %d, expected %d", i, top[i].ID, id)
		}
	}
	if top[0].Duration != 10*time.Second {
		t.Errorf("Duration = %v, expected 10s", top[0].Duration)
	}
	if !top[0].EndedAt.Equal(ended.Add(time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", top[0].EndedAt, ended.Add(time.Minute))
	}

	recent, err := s.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != 4 || recent[1].ID != 3 {
		t.Errorf("RecentRounds() = %+v", recent)
	}
}

func TestSessionDefaultsEndedAt(t *testing.T) {
	s := openTestSession(t)
	before := time.Now().Add(-time.Second)

	if _, err := s.SaveRound(Round{Score: 1, Distance: 8}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := s.RecentRounds(1)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if rounds[0].EndedAt.Before(before) {
		t.Errorf("EndedAt = %v, expected about now", rounds[0].EndedAt)
	}
}

func TestSessionStats(t *testing.T) {
	s := openTestSession(t)

	for _, r := range []Round{
		{Score: 2, Distance: 20, Duration: 2 * time.Second},
		{Score: 6, Distance: 50, Duration: 5 * time.Second},
		{Score: 4, Distance: 35, Duration: 4 * time.Second},
	} {
		if _, err := s.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Rounds = %d, expected 3", stats.Rounds)
	}
	if stats.Best != 6 {
		t.Errorf("Best = %d, expected 6", stats.Best)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %f, expected 4", stats.AvgScore)
	}
	if stats.TotalDistance != 105 {
		t.Errorf("TotalDistance = %d, expected 105", stats.TotalDistance)
	}
	if stats.Longest != 5*time.Second {
		t.Errorf("Longest = %v, expected 5s", stats.Longest)
	}

	best, err := s.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 6 {
		t.Errorf("Best() = %d, expected 6", best)
	}
}
