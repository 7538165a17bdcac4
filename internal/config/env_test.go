package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_STR", "value")
	if got := GetEnv("SNAKE_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("SNAKE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}

	// Set but empty is still set.
	t.Setenv("SNAKE_TEST_EMPTY", "")
	if got := GetEnv("SNAKE_TEST_EMPTY", "fallback"); got != "" {
		t.Errorf("GetEnv empty = %q, want empty", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"2222", 2222},
		{"-3", -3},
		{"abc", 7},
		{"", 7},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SNAKE_TEST_INT", tt.value)
			if got := GetEnvInt("SNAKE_TEST_INT", 7); got != tt.want {
				t.Errorf("GetEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvUint64(t *testing.T) {
	t.Setenv("SNAKE_TEST_SEED", "18446744073709551615")
	if got := GetEnvUint64("SNAKE_TEST_SEED", 1); got != 18446744073709551615 {
		t.Errorf("GetEnvUint64 = %d", got)
	}
	t.Setenv("SNAKE_TEST_SEED", "-1")
	if got := GetEnvUint64("SNAKE_TEST_SEED", 1); got != 1 {
		t.Errorf("GetEnvUint64 negative = %d, want fallback", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SNAKE_TEST_DUR", "15s")
	if got := GetEnvDuration("SNAKE_TEST_DUR", time.Second); got != 15*time.Second {
		t.Errorf("GetEnvDuration = %v, want 15s", got)
	}
	t.Setenv("SNAKE_TEST_DUR", "soon")
	if got := GetEnvDuration("SNAKE_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration bad = %v, want fallback", got)
	}
}
