// Package report contains the aggregation and reporting use cases.
// Every function here is a pure transform over an in-memory record
// snapshot; none of them performs I/O.
package report

import (
	"time"

	"github.com/moneymap/backend/internal/domain/entity"
)

// Period selects the date range used for the totals view.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// dateLayout is the storage format for record dates.
const dateLayout = "2006-01-02"

// IsValidPeriod reports whether p is a known period selector.
func IsValidPeriod(p Period) bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// ParseRecordDate parses a stored record date with local calendar
// semantics. The second return value is false for malformed dates;
// callers exclude such records from bucketing and sorting.
func ParseRecordDate(date string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PeriodBounds resolves a period anchored at the given date into an
// inclusive [start, end] range. Weeks start on Monday; month and year
// ends rely on calendar-correct date arithmetic, so leap years need no
// special casing.
func PeriodBounds(anchor time.Time, period Period) (start, end time.Time) {
	loc := anchor.Location()

	switch period {
	case PeriodWeekly:
		weekday := int(anchor.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday counts as day 7 so the week never starts after the anchor
		}
		start = time.Date(anchor.Year(), anchor.Month(), anchor.Day()-(weekday-1), 0, 0, 0, 0, loc)
		end = endOfDay(start.AddDate(0, 0, 6))
	case PeriodMonthly:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		end = endOfDay(start.AddDate(0, 1, -1))
	default:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = endOfDay(time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, loc))
	}
	return start, end
}

// FilterByPeriod returns the records whose date falls within the bounds
// of the given period. Records with malformed dates are excluded.
func FilterByPeriod(records []*entity.Record, period Period, anchor time.Time) []*entity.Record {
	start, end := PeriodBounds(anchor, period)

	filtered := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		d, ok := ParseRecordDate(r.Date)
		if !ok {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// endOfDay returns the last representable millisecond of the given day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
