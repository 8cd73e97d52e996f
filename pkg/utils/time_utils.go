package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Stays longer than this, or outside these years, are rejected.
const (
	MaxStayNights = 365
	MinStayYear   = 2000
	MaxStayYear   = 2100
)

// FromUnixSeconds returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// StartOfDay drops the clock part, keeping the calendar date in UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayNumber counts calendar days since 1970-01-01 (negative before).
func dayNumber(t time.Time) int64 {
	return StartOfDay(t).Unix() / 86400
}

// NightsBetween counts the nights of a stay from check-in to check-out.
func NightsBetween(start, end time.Time) int {
	n := dayNumber(end) - dayNumber(start)
	if n <= 0 {
		return 0
	}
	return int(n)
}

// EachDay lists every calendar date from start to end, both inclusive.
func EachDay(start, end time.Time) []time.Time {
	s, e := StartOfDay(start), StartOfDay(end)
	if e.Before(s) {
		return nil
	}
	days := make([]time.Time, 0, NightsBetween(s, e)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ParseStay parses a check-in/check-out pair. The stay must be between one
// and MaxStayNights nights and fall within MinStayYear..MaxStayYear.
func ParseStay(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if start.Year() < MinStayYear || end.Year() > MaxStayYear {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: dates must be within %d-%d", ErrInvalidDateRange, MinStayYear, MaxStayYear)
	}
	nights := NightsBetween(start, end)
	if nights < 1 {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if nights > MaxStayNights {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: stay longer than %d nights", ErrInvalidDateRange, MaxStayNights)
	}
	return start, end, nil
}
