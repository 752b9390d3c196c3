package model_test

import (
	"testing"
	"time"

	"drivio/internal/domains/rental/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddons_DayRate(t *testing.T) {
	rates := model.DefaultAddonRates()

	tests := []struct {
		name   string
		addons model.Addons
		want   int64
	}{
		{"none", model.Addons{}, 0},
		{"insurance only", model.Addons{Insurance: true}, 15},
		{"gps only", model.Addons{GPS: true}, 5},
		{"child seat only", model.Addons{ChildSeat: true}, 8},
		{"additional driver only", model.Addons{AdditionalDriver: true}, 10},
		{
			"all",
			model.Addons{Insurance: true, GPS: true, ChildSeat: true, AdditionalDriver: true},
			38,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.NewFromInt(tt.want).Equal(tt.addons.DayRate(rates)))
		})
	}
}

func TestQuote(t *testing.T) {
	rates := model.DefaultAddonRates()
	dailyRate := decimal.NewFromInt(50)

	tests := []struct {
		name   string
		days   int
		addons model.Addons
		want   int64
	}{
		{"base only", 3, model.Addons{}, 150},
		{"with insurance", 3, model.Addons{Insurance: true}, 195},
		{"all addons", 2, model.Addons{Insurance: true, GPS: true, ChildSeat: true, AdditionalDriver: true}, 176},
		{"zero days", 0, model.Addons{Insurance: true}, 0},
		{"negative days", -1, model.Addons{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Quote(dailyRate, tt.days, tt.addons, rates)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestQuote_AddonsAreAdditive(t *testing.T) {
	rates := model.DefaultAddonRates()
	dailyRate := decimal.NewFromFloat(49.99)
	days := 4

	base := model.Quote(dailyRate, days, model.Addons{}, rates)
	withGPS := model.Quote(dailyRate, days, model.Addons{GPS: true}, rates)

	surcharge := decimal.NewFromInt(int64(days)).Mul(rates.GPS)
	assert.True(t, base.Add(surcharge).Equal(withGPS))
}

func TestRentalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day span", day(1), day(2), 1},
		{"week", day(1), day(8), 7},
		{"same instant", day(5), day(5), 0},
		{"end before start", day(5), day(3), 0},
		{
			"partial day rounds up",
			day(1),
			time.Date(2025, time.March, 2, 6, 0, 0, 0, time.UTC),
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.RentalDays(tt.start, tt.end))
		})
	}
}
