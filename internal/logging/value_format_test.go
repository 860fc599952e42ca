package logging

import (
	"testing"
	"time"
)

func TestFormatDurationHuman(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"negative falls back to default", -time.Second, (-time.Second).String()},
		{"sub-second shows milliseconds", 250 * time.Millisecond, "250ms"},
		{"zero shows default", 0, (0 * time.Second).String()},
		{"whole seconds", 3 * time.Second, "3s"},
		{"fractional seconds", 1500 * time.Millisecond, "1.5s"},
		{"minutes and seconds", 90 * time.Second, "1m 30s"},
		{"whole minutes", 2 * time.Minute, "2m"},
		{"hours minutes seconds", time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
		{"hours and minutes", time.Hour + 2*time.Minute, "1h 2m"},
		{"whole hours", 3 * time.Hour, "3h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDurationHuman(tt.d); got != tt.want {
				t.Errorf("FormatDurationHuman(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
