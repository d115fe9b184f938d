package leave

import "time"

// Period is a closed reporting window. Both bounds are inclusive dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the first through last day of a calendar month.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}
}

// QuarterPeriod returns the three-month window of quarter q (1-4):
// quarter q starts in month (q-1)*3+1.
func QuarterPeriod(year, quarter int) Period {
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return Period{Start: start, End: end}
}

// YearPeriod returns January 1 through December 31 of a year.
func YearPeriod(year int) Period {
	return Period{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
