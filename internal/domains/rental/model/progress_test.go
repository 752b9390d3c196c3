package model_test

import (
	"testing"
	"time"

	"drivio/internal/domains/rental/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestEndOfDay(t *testing.T) {
	end := model.EndOfDay(time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC))

	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 999_000_000, end.Nanosecond())
}

func TestPercentElapsed(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 11)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before start", date(2025, time.February, 20), 0},
		{"at start", start, 0},
		{"midway", date(2025, time.March, 6), 50},
		{"at end", end, 100},
		{"after end", date(2025, time.April, 1), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.PercentElapsed(start, end, tt.now), 0.001)
		})
	}
}

func TestPercentElapsed_DegenerateWindow(t *testing.T) {
	at := date(2025, time.March, 1)

	// A window of zero length that has started is fully elapsed.
	assert.Equal(t, float64(100), model.PercentElapsed(at, at, at.Add(time.Second)))
}

func TestTimeRemaining(t *testing.T) {
	now := date(2025, time.March, 1)

	tests := []struct {
		name string
		end  time.Time
		want model.Remaining
	}{
		{
			name: "days hours minutes",
			end:  now.Add(49*time.Hour + 30*time.Minute),
			want: model.Remaining{Days: 2, Hours: 1, Minutes: 30},
		},
		{
			name: "sub-minute remainder floors to zero",
			end:  now.Add(59 * time.Second),
			want: model.Remaining{},
		},
		{
			name: "exactly expired",
			end:  now,
			want: model.Remaining{Expired: true},
		},
		{
			name: "past end",
			end:  now.Add(-time.Hour),
			want: model.Remaining{Expired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.TimeRemaining(tt.end, now))
		})
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    model.Severity
	}{
		{0, model.SeverityNormal},
		{49.9, model.SeverityNormal},
		{50, model.SeverityCaution},
		{69.9, model.SeverityCaution},
		{70, model.SeverityWarning},
		{89.9, model.SeverityWarning},
		{90, model.SeverityCritical},
		{100, model.SeverityCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.SeverityFor(tt.percent), "percent %v", tt.percent)
	}
}

func TestProgressFor(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 10)

	t.Run("active rental mid-window", func(t *testing.T) {
		progress, ok := model.ProgressFor(model.StatusActive, start, end, date(2025, time.March, 5))

		assert.True(t, ok)
		assert.Greater(t, progress.PercentElapsed, float64(0))
		assert.Less(t, progress.PercentElapsed, float64(100))
		assert.False(t, progress.Remaining.Expired)
	})

	t.Run("window closes at end of the end date", func(t *testing.T) {
		lateOnEndDate := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

		progress, ok := model.ProgressFor(model.StatusActive, start, end, lateOnEndDate)

		assert.True(t, ok)
		assert.Less(t, progress.PercentElapsed, float64(100), "the end date itself is still inside the window")
		assert.False(t, progress.Remaining.Expired)
	})

	t.Run("past the window", func(t *testing.T) {
		progress, ok := model.ProgressFor(model.StatusActive, start, end, date(2025, time.March, 12))

		assert.True(t, ok)
		assert.Equal(t, float64(100), progress.PercentElapsed)
		assert.True(t, progress.Remaining.Expired)
		assert.Equal(t, model.SeverityCritical, progress.Severity)
	})

	t.Run("terminal statuses have no progress", func(t *testing.T) {
		for _, s := range []model.Status{model.StatusRejected, model.StatusCompleted, model.StatusCancelled} {
			_, ok := model.ProgressFor(s, start, end, date(2025, time.March, 5))
			assert.False(t, ok, "status %q", s)
		}
	})

	t.Run("unknown status has no progress", func(t *testing.T) {
		_, ok := model.ProgressFor(model.Status("bogus"), start, end, date(2025, time.March, 5))
		assert.False(t, ok)
	})
}

func TestFiveDayRentalMidway(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	days := model.RentalDays(start, end)
	assert.Equal(t, 5, days)

	total := model.Quote(decimal.NewFromInt(50), days, model.Addons{GPS: true}, model.DefaultAddonRates())
	assert.True(t, decimal.NewFromInt(275).Equal(total), "got %s", total)

	midway := start.Add(end.Sub(start) / 2)

	progress, ok := model.ProgressFor(model.StatusActive, start, end, midway)
	assert.True(t, ok)
	assert.Greater(t, progress.PercentElapsed, 40.0)
	assert.Less(t, progress.PercentElapsed, 60.0)
	assert.Contains(t, []model.Severity{model.SeverityNormal, model.SeverityCaution}, progress.Severity)
}
