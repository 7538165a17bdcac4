// Package server tracks connected players for the SSH host. Every
// connection plays its own game; the hub only shares the leaderboard,
// the player count and shutdown notices.
package server

import (
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/metrics"
)

// GameServer is the interface clients use to talk to the hub.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID string)
	ReportScore(clientID string, score int)
	TopScores() []TopScoreEntry
	Players() int
}

// Compile-time check that Hub implements GameServer.
var _ GameServer = (*Hub)(nil)

// ClientHandle represents a client's registration with the hub.
type ClientHandle struct {
	ID       string
	Username string
	Joined   time.Time
	EventsCh chan ClientEvent // Events sent to the client; never closed, receivers poll with select/default
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventNewHighScore                   // Leaderboard changed
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	At       time.Time
	seq      int // Earlier reports win ties
}

// Hub holds all connected clients and the in-memory leaderboard.
type Hub struct {
	mu           sync.RWMutex
	clients      map[string]*ClientHandle
	top          []TopScoreEntry
	limit        int
	seq          int
	shuttingDown bool
	logger       *log.Logger
}

// NewHub creates a hub keeping the best limit scores.
func NewHub(limit int, logger *log.Logger) *Hub {
	if limit <= 0 {
		limit = config.TopScoresCount
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[string]*ClientHandle),
		limit:   limit,
		logger:  logger,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
// Clients joining during shutdown are told straight away.
func (h *Hub) RegisterClient(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:       uuid.New().String(),
		Username: TruncateUsername(username),
		Joined:   time.Now(),
		EventsCh: make(chan ClientEvent, 16),
	}

	h.mu.Lock()
	h.clients[handle.ID] = handle
	if h.shuttingDown {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	players := len(h.clients)
	h.mu.Unlock()

	metrics.SessionOpened()
	h.logger.Info("client registered", "id", handle.ID, "user", handle.Username, "players", players)
	return handle
}

// UnregisterClient removes a client from the hub. Unknown ids are ignored.
func (h *Hub) UnregisterClient(clientID string) {
	h.mu.Lock()
	handle, ok := h.clients[clientID]
	if ok {
		delete(h.clients, clientID)
	}
	h.mu.Unlock()

	if !ok {
		return
	}
	metrics.SessionClosed()
	h.logger.Info("client unregistered", "id", clientID, "user", handle.Username,
		"duration", time.Since(handle.Joined).Round(time.Second))
}

// ReportScore offers a finished game's score to the leaderboard. Other
// clients get EventNewHighScore when it makes the cut.
func (h *Hub) ReportScore(clientID string, score int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle, ok := h.clients[clientID]
	if !ok {
		return
	}

	h.seq++
	entry := TopScoreEntry{
		Username: handle.Username,
		Score:    score,
		At:       time.Now(),
		seq:      h.seq,
	}
	h.top = append(h.top, entry)
	slices.SortFunc(h.top, func(a, b TopScoreEntry) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.seq - b.seq
	})
	if len(h.top) > h.limit {
		h.top = h.top[:h.limit]
	}

	if !slices.ContainsFunc(h.top, func(e TopScoreEntry) bool { return e.seq == entry.seq }) {
		return
	}
	h.logger.Debug("leaderboard updated", "user", entry.Username, "score", score)
	for id, c := range h.clients {
		if id == clientID {
			continue
		}
		select {
		case c.EventsCh <- ClientEvent{Type: EventNewHighScore}:
		default:
		}
	}
}

// TopScores returns a copy of the leaderboard, best first.
func (h *Hub) TopScores() []TopScoreEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.top)
}

// Players returns the number of connected clients.
func (h *Hub) Players() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown notifies all connected clients and waits for them to
// disconnect, up to the given timeout.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.Lock()
	h.shuttingDown = true
	for _, handle := range h.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timeout, clients still connected", "players", h.Players())
			return
		case <-ticker.C:
		}
	}
}

// TruncateUsername limits a name to the display length.
func TruncateUsername(name string) string {
	r := []rune(name)
	if len(r) > config.MaxUsernameLength {
		return string(r[:config.MaxUsernameLength])
	}
	return name
}
