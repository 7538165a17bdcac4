package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLandingPage(t *testing.T) {
	tests := []struct {
		name string
		data pageData
		want string
	}{
		{"default port", pageData{SSHHost: "snake.example", SSHPort: "22"}, "ssh -t snake.example"},
		{"custom port", pageData{SSHHost: "snake.example", SSHPort: "2222"}, "ssh -t -p 2222 snake.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler(tt.data).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("page missing %q", tt.want)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(pageData{SSHHost: "h", SSHPort: "22"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
