package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
)

// otherCategory is the bucket name for records with an empty category.
const otherCategory = "Other"

// monthNames holds the chart labels for the twelve month buckets.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthBucket is one bar of the monthly spending chart.
type MonthBucket struct {
	Month string          // human month name, "January".."December"
	Date  string          // canonical first-of-month date, "YYYY-MM-01"
	Total decimal.Decimal // summed spending for the month
}

// BalancePoint is one point of the cumulative balance line chart.
type BalancePoint struct {
	Date    string          // raw record date as stored
	Label   string          // short display label, e.g. "Jan 5, 2024"
	Balance decimal.Decimal // running balance after this record is applied
}

// CategorySlice is one slice of the category breakdown pie chart.
type CategorySlice struct {
	Name  string
	Value decimal.Decimal
}

// MonthlySeries builds the twelve-bucket spending series for a year.
// Every month is present in calendar order even when it has no data.
// Only spending types (expense, bill, installment) contribute; records
// with malformed dates or dates outside the year are skipped.
func MonthlySeries(records []*entity.Record, year int) []MonthBucket {
	totals := [12]decimal.Decimal{}
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, r := range records {
		if !entity.IsSpendingType(r.Type) {
			continue
		}
		d, ok := ParseRecordDate(r.Date)
		if !ok || d.Year() != year {
			continue
		}
		m := int(d.Month()) - 1
		totals[m] = totals[m].Add(r.Amount)
	}

	series := make([]MonthBucket, 12)
	for i := 0; i < 12; i++ {
		series[i] = MonthBucket{
			Month: monthNames[i],
			Date:  fmt.Sprintf("%04d-%02d-01", year, i+1),
			Total: totals[i],
		}
	}
	return series
}

// BalanceSeries builds the cumulative balance series over the full record
// set. Records are stable-sorted by date ascending, so records sharing a
// date keep their input order. Income adds to the running balance, every
// other known type subtracts. Records with malformed dates or unknown
// types emit no point.
func BalanceSeries(records []*entity.Record) []BalancePoint {
	type dated struct {
		record *entity.Record
		date   time.Time
	}

	sorted := make([]dated, 0, len(records))
	for _, r := range records {
		if !entity.IsValidRecordType(r.Type) {
			continue
		}
		d, ok := ParseRecordDate(r.Date)
		if !ok {
			continue
		}
		sorted = append(sorted, dated{record: r, date: d})
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	running := decimal.Zero
	points := make([]BalancePoint, 0, len(sorted))
	for _, s := range sorted {
		if s.record.Type == entity.RecordTypeIncome {
			running = running.Add(s.record.Amount)
		} else {
			running = running.Sub(s.record.Amount)
		}
		points = append(points, BalancePoint{
			Date:    s.record.Date,
			Label:   s.date.Format("Jan 2, 2006"),
			Balance: running,
		})
	}
	return points
}

// CategoryBreakdown builds the per-category spending series over the full
// record set. Only spending types contribute. Categories are trimmed of
// surrounding whitespace; an empty category falls into the "Other" bucket.
// Slices are returned sorted by value descending, then name ascending,
// so iteration order is a contract rather than map order.
func CategoryBreakdown(records []*entity.Record) []CategorySlice {
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		if !entity.IsSpendingType(r.Type) {
			continue
		}
		name := strings.TrimSpace(r.Category)
		if name == "" {
			name = otherCategory
		}
		totals[name] = totals[name].Add(r.Amount)
	}

	slices := make([]CategorySlice, 0, len(totals))
	for name, value := range totals {
		slices = append(slices, CategorySlice{Name: name, Value: value})
	}

	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Value.Equal(slices[j].Value) {
			return slices[i].Value.GreaterThan(slices[j].Value)
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}
