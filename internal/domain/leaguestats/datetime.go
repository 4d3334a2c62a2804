package leaguestats

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate parses DD-MM-YYYY or DD/MM/YYYY in loc. Locale-independent;
// impossible calendar dates such as 31-02-2025 are rejected.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	var sep string
	switch {
	case strings.Contains(value, "-"):
		sep = "-"
	case strings.Contains(value, "/"):
		sep = "/"
	default:
		return time.Time{}, false
	}

	parts := strings.Split(value, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, ok := parseBoundedInt(parts[0], 1, 2, 1, 31)
	if !ok {
		return time.Time{}, false
	}
	month, ok := parseBoundedInt(parts[1], 1, 2, 1, 12)
	if !ok {
		return time.Time{}, false
	}
	year, ok := parseBoundedInt(parts[2], 4, 4, 1, 9999)
	if !ok {
		return time.Time{}, false
	}

	out := time.Date(year, time.Month(month), day, 0, 0, 0, 0, locationOrUTC(loc))
	if out.Day() != day || int(out.Month()) != month {
		return time.Time{}, false
	}
	return out, true
}

// ParseKickoff combines a date and an HH:MM (24h) time in loc.
func ParseKickoff(date, clock string, loc *time.Location) (time.Time, bool) {
	day, ok := ParseDate(date, loc)
	if !ok {
		return time.Time{}, false
	}

	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, ok := parseBoundedInt(parts[0], 1, 2, 0, 23)
	if !ok {
		return time.Time{}, false
	}
	minute, ok := parseBoundedInt(parts[1], 2, 2, 0, 59)
	if !ok {
		return time.Time{}, false
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

func parseBoundedInt(raw string, minDigits, maxDigits, lo, hi int) (int, bool) {
	if len(raw) < minDigits || len(raw) > maxDigits {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// sameOrBeforeDay compares calendar days in loc, ignoring the time of day.
func sameOrBeforeDay(day, now time.Time, loc *time.Location) bool {
	now = now.In(locationOrUTC(loc))
	y1, m1, d1 := day.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 <= d2
}
