package leaguestats

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		ok      bool
		y, m, d int
	}{
		{in: "15-03-2025", ok: true, y: 2025, m: 3, d: 15},
		{in: "15/03/2025", ok: true, y: 2025, m: 3, d: 15},
		{in: "5-3-2025", ok: true, y: 2025, m: 3, d: 5},
		{in: " 07/10/2026 ", ok: true, y: 2026, m: 10, d: 7},
		{in: "31-02-2025", ok: false},
		{in: "2025-03-15", ok: false},
		{in: "15-03/2025", ok: false},
		{in: "15-13-2025", ok: false},
		{in: "15-03-25", ok: false},
		{in: "", ok: false},
		{in: "mañana", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in, time.UTC)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok=%v want=%v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Year() != tt.y || int(got.Month()) != tt.m || got.Day() != tt.d {
				t.Fatalf("ParseDate(%q)=%s", tt.in, got)
			}
		})
	}
}

func TestParseKickoff(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	got, ok := ParseKickoff("15-03-2025", "16:00", madrid)
	if !ok {
		t.Fatalf("expected kickoff to parse")
	}
	if want := time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("kickoff=%s want=%s", got.UTC(), want)
	}

	bad := []struct{ date, clock string }{
		{"15-03-2025", ""},
		{"15-03-2025", "24:00"},
		{"15-03-2025", "16:5"},
		{"15-03-2025", "4pm"},
		{"", "16:00"},
	}
	for _, b := range bad {
		if _, ok := ParseKickoff(b.date, b.clock, time.UTC); ok {
			t.Fatalf("expected ParseKickoff(%q, %q) to fail", b.date, b.clock)
		}
	}
}
