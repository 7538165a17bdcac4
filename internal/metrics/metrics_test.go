package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessionGauge(t *testing.T) {
	before := testutil.ToFloat64(gActiveSessions)
	SessionOpened()
	SessionOpened()
	SessionClosed()
	if got := testutil.ToFloat64(gActiveSessions) - before; got != 1 {
		t.Errorf("active sessions delta = %v, want 1", got)
	}
}

func TestGameOverByCollision(t *testing.T) {
	wall := testutil.ToFloat64(cGamesOver.WithLabelValues("wall"))
	GameOver("wall", 4)
	if got := testutil.ToFloat64(cGamesOver.WithLabelValues("wall")) - wall; got != 1 {
		t.Errorf("wall game overs delta = %v, want 1", got)
	}
}

func TestHandlerServesCollectors(t *testing.T) {
	FoodEaten()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "snake_food_eaten_total") {
		t.Errorf("metrics output missing snake_food_eaten_total")
	}
}
