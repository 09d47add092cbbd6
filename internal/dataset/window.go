package dataset

import (
	"time"

	"carbon-credits/internal/model"
)

// Window returns the daily dates from asOf-WindowDays through asOf, both inclusive.
// The time-of-day of asOf is carried on every date; only the calendar day is used downstream.
func Window(asOf time.Time) []time.Time {
	start := asOf.AddDate(0, 0, -model.WindowDays)
	dates := make([]time.Time, 0, model.WindowDays+1)
	for d := start; !d.After(asOf); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
