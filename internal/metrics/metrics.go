// Package metrics exposes Prometheus collectors for the SSH host.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const labelCollision = "collision"

// Sessions
var (
	gActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snake_active_sessions",
		Help: "Connected player sessions",
	})
	cSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snake_sessions_total",
		Help: "Player sessions opened since start",
	})
)

// Games
var (
	cGamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snake_games_started_total",
		Help: "Games started, including restarts",
	})
	cGamesOver = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snake_games_over_total",
		Help: "Finished games by collision type",
	}, []string{labelCollision})
	cFoodEaten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snake_food_eaten_total",
		Help: "Food items eaten across all games",
	})
	hFinalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "snake_final_score",
		Help:    "Snake length when a game ends",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	})
)

// SessionOpened records a new player connection.
func SessionOpened() {
	cSessions.Inc()
	gActiveSessions.Inc()
}

// SessionClosed records a player disconnect.
func SessionClosed() {
	gActiveSessions.Dec()
}

// GameStarted records a game start.
func GameStarted() {
	cGamesStarted.Inc()
}

// FoodEaten records one food pickup.
func FoodEaten() {
	cFoodEaten.Inc()
}

// GameOver records a finished game with its cause and final score.
func GameOver(collision string, score int) {
	cGamesOver.WithLabelValues(collision).Inc()
	hFinalScore.Observe(float64(score))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
