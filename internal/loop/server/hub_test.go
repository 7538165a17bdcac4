package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestHub(limit int) *Hub {
	return NewHub(limit, log.New(io.Discard))
}

func TestRegisterUnregister(t *testing.T) {
	h := newTestHub(3)
	a := h.RegisterClient("alice")
	b := h.RegisterClient("bob")

	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("ids not unique: %q %q", a.ID, b.ID)
	}
	if h.Players() != 2 {
		t.Errorf("players = %d, want 2", h.Players())
	}

	h.UnregisterClient(a.ID)
	h.UnregisterClient(a.ID)
	h.UnregisterClient("missing")
	if h.Players() != 1 {
		t.Errorf("players = %d, want 1", h.Players())
	}
}

func TestUsernameTruncated(t *testing.T) {
	h := newTestHub(3)
	c := h.RegisterClient("a-very-long-username-indeed")
	if len(c.Username) != 16 {
		t.Errorf("username %q not truncated", c.Username)
	}
}

func TestTopScores(t *testing.T) {
	h := newTestHub(3)
	a := h.RegisterClient("alice")
	b := h.RegisterClient("bob")

	h.ReportScore(a.ID, 5)
	h.ReportScore(b.ID, 9)
	h.ReportScore(a.ID, 5)
	h.ReportScore(b.ID, 2)
	h.ReportScore(b.ID, 7)

	got := h.TopScores()
	want := []struct {
		user  string
		score int
	}{
		{"bob", 9},
		{"bob", 7},
		{"alice", 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Username != w.user || got[i].Score != w.score {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, got[i].Username, got[i].Score, w.user, w.score)
		}
	}

	// Earlier report wins the tie
	if got[2].seq != 1 {
		t.Errorf("tie kept seq %d, want 1", got[2].seq)
	}
}

func TestTopScoresIsCopy(t *testing.T) {
	h := newTestHub(3)
	a := h.RegisterClient("alice")
	h.ReportScore(a.ID, 4)

	got := h.TopScores()
	got[0].Score = 100
	if h.TopScores()[0].Score != 4 {
		t.Errorf("leaderboard mutated through copy")
	}
}

func TestReportScoreUnknownClient(t *testing.T) {
	h := newTestHub(3)
	h.ReportScore("nobody", 10)
	if len(h.TopScores()) != 0 {
		t.Errorf("unknown client reached leaderboard")
	}
}

func TestHighScoreNotifiesOthers(t *testing.T) {
	h := newTestHub(1)
	a := h.RegisterClient("alice")
	b := h.RegisterClient("bob")

	h.ReportScore(a.ID, 3)
	select {
	case ev := <-b.EventsCh:
		if ev.Type != EventNewHighScore {
			t.Errorf("event = %v, want new high score", ev.Type)
		}
	default:
		t.Errorf("bob not notified")
	}
	select {
	case ev := <-a.EventsCh:
		t.Errorf("reporter got own event %v", ev.Type)
	default:
	}

	// Not good enough for a one-entry board
	h.ReportScore(b.ID, 1)
	select {
	case ev := <-a.EventsCh:
		t.Errorf("low score notified: %v", ev.Type)
	default:
	}
}

func TestShutdown(t *testing.T) {
	h := newTestHub(3)
	c := h.RegisterClient("alice")

	done := make(chan struct{})
	go func() {
		h.Shutdown(2 * time.Second)
		close(done)
	}()

	select {
	case ev := <-c.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("event = %v, want shutdown", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("no shutdown event")
	}
	h.UnregisterClient(c.ID)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Shutdown did not return after clients left")
	}

	late := h.RegisterClient("late")
	select {
	case ev := <-late.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Errorf("late event = %v", ev.Type)
		}
	default:
		t.Errorf("late client not told about shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	h := newTestHub(3)
	h.RegisterClient("stuck")

	start := time.Now()
	h.Shutdown(100 * time.Millisecond)
	if time.Since(start) > time.Second {
		t.Errorf("Shutdown ignored timeout")
	}
}

func TestEventsChannelStaysOpen(t *testing.T) {
	h := newTestHub(3)
	a := h.RegisterClient("alice")

	h.UnregisterClient(a.ID)
	h.Shutdown(10 * time.Millisecond)

	select {
	case _, ok := <-a.EventsCh:
		if !ok {
			t.Fatalf("events channel closed")
		}
	default:
	}
}
