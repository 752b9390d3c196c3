package model

import "time"

// Severity bands how far through the rental window a booking is, for badge
// color coding.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityCaution  Severity = "caution"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Remaining is the floored decomposition of the time left on a rental.
// Expired means the window has fully elapsed; the numeric fields are zero in
// that case.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Expired bool `json:"expired"`
}

// Progress is the time-derived view of a non-terminal rental.
type Progress struct {
	PercentElapsed float64   `json:"percent_elapsed"`
	Remaining      Remaining `json:"remaining"`
	Severity       Severity  `json:"severity"`
}

// EndOfDay returns the last representable millisecond of t's calendar day in
// t's location. Rental end dates are inclusive, so the window closes at the
// end of the end date, not at its midnight.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
}

// PercentElapsed linearly interpolates now across [start, end], clamped to
// [0, 100]. Callers pass the true closing instant as end (EndOfDay of the
// end date for calendar ranges).
func PercentElapsed(start, end, now time.Time) float64 {
	if !now.After(start) {
		return 0
	}

	if !now.Before(end) {
		return 100
	}

	total := end.Sub(start)
	if total <= 0 {
		return 100
	}

	percent := float64(now.Sub(start)) / float64(total) * 100

	if percent < 0 {
		return 0
	}

	if percent > 100 {
		return 100
	}

	return percent
}

// TimeRemaining decomposes end minus now into whole days, hours and minutes
// by floor division. A non-positive difference is reported as expired with
// all numeric fields zero.
func TimeRemaining(end, now time.Time) Remaining {
	diff := end.Sub(now)
	if diff <= 0 {
		return Remaining{Expired: true}
	}

	const (
		day    = 24 * time.Hour
		hour   = time.Hour
		minute = time.Minute
	)

	return Remaining{
		Days:    int(diff / day),
		Hours:   int((diff % day) / hour),
		Minutes: int((diff % hour) / minute),
	}
}

// SeverityFor maps a percent-elapsed value to its display band.
func SeverityFor(percent float64) Severity {
	switch {
	case percent >= 90:
		return SeverityCritical
	case percent >= 70:
		return SeverityWarning
	case percent >= 50:
		return SeverityCaution
	default:
		return SeverityNormal
	}
}

// ProgressFor computes the progress snapshot for a rental at now. Terminal
// and unrecognized statuses have no progress view; ok is false for those.
func ProgressFor(status Status, startDate, endDate, now time.Time) (Progress, bool) {
	if !status.Valid() || status.Terminal() {
		return Progress{}, false
	}

	end := EndOfDay(endDate)
	percent := PercentElapsed(startDate, end, now)

	return Progress{
		PercentElapsed: percent,
		Remaining:      TimeRemaining(end, now),
		Severity:       SeverityFor(percent),
	}, true
}
