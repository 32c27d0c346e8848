// Package age renders a birthdate as the short age string shown on the
// dashboard ("34yrs", "5mths", "12days").
package age

import (
	"strconv"
	"time"
)

// At computes the display age for a birthdate at the given instant.
//
// The calculation is clock-epoch arithmetic, not calendar subtraction:
// the elapsed duration is projected onto the Unix epoch and the year,
// month and day fields are read back from the resulting UTC date. Results
// near month or year boundaries can be off by one. Dashboards have always
// shown ages this way, so the behavior is kept.
func At(birthDate, now time.Time) string {
	elapsed := time.Unix(0, 0).UTC().Add(now.Sub(birthDate))

	years := elapsed.Year() - 1970
	if years < 0 {
		years = -years
	}
	months := int(elapsed.Month()) - 1
	days := elapsed.Day() - 1

	switch {
	case years > 0:
		return strconv.Itoa(years) + "yrs"
	case months > 0:
		return strconv.Itoa(months) + "mths"
	default:
		return strconv.Itoa(days) + "days"
	}
}

// Now computes the display age for a birthdate at the current time.
func Now(birthDate time.Time) string {
	return At(birthDate, time.Now())
}
