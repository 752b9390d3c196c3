package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Addons flags the optional paid extras on a rental. Each selected add-on is
// billed per rental day at a fixed rate.
type Addons struct {
	Insurance        bool `json:"has_insurance"`
	GPS              bool `json:"has_gps"`
	ChildSeat        bool `json:"has_child_seat"`
	AdditionalDriver bool `json:"has_additional_driver"`
}

// AddonRates holds the per-day surcharge for each add-on. These are business
// constants, sourced from configuration.
type AddonRates struct {
	Insurance        decimal.Decimal
	GPS              decimal.Decimal
	ChildSeat        decimal.Decimal
	AdditionalDriver decimal.Decimal
}

// DefaultAddonRates are the standard surcharges: insurance 15, GPS 5, child
// seat 8, additional driver 10 per day.
func DefaultAddonRates() AddonRates {
	return AddonRates{
		Insurance:        decimal.NewFromInt(15),
		GPS:              decimal.NewFromInt(5),
		ChildSeat:        decimal.NewFromInt(8),
		AdditionalDriver: decimal.NewFromInt(10),
	}
}

// DayRate sums the per-day surcharge of every selected add-on.
func (a Addons) DayRate(rates AddonRates) decimal.Decimal {
	total := decimal.Zero

	if a.Insurance {
		total = total.Add(rates.Insurance)
	}

	if a.GPS {
		total = total.Add(rates.GPS)
	}

	if a.ChildSeat {
		total = total.Add(rates.ChildSeat)
	}

	if a.AdditionalDriver {
		total = total.Add(rates.AdditionalDriver)
	}

	return total
}

// Quote computes the rental total: days x dailyRate plus days x the summed
// day rate of the selected add-ons. Zero days quotes zero regardless of
// add-on flags. No rounding is applied here; display formatting happens at
// the response boundary.
func Quote(dailyRate decimal.Decimal, days int, addons Addons, rates AddonRates) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}

	d := decimal.NewFromInt(int64(days))

	return d.Mul(dailyRate).Add(d.Mul(addons.DayRate(rates)))
}

// RentalDays counts the billable days between two calendar dates. Partial
// days round up, so midnight-normalized dates bill exactly end minus start.
func RentalDays(startDate, endDate time.Time) int {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return 0
	}

	const day = 24 * time.Hour

	days := int(diff / day)
	if diff%day > 0 {
		days++
	}

	return days
}
