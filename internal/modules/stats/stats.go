// Package stats turns an order list into the dashboard numbers: order counts
// and revenue for today / this week / this month, plus a per-day series for
// the current calendar month. Everything is pure computation over inputs; the
// reference time is always passed in.
package stats

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/orders"
)

type Bucket struct {
	Count        int
	RevenueCents int64
}

// DayPoint is one calendar day of the current month for the chart.
type DayPoint struct {
	Day     int     `json:"day"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"` // currency units, rounded to 2 decimals
}

type Summary struct {
	Today     Bucket
	ThisWeek  Bucket
	ThisMonth Bucket
	ByDay     []DayPoint
}

// Summarize buckets orders relative to now, in now's location.
//   - today: created within the last 24 hours
//   - this week: Monday 00:00 through Sunday 24:00 of the current week
//   - this month: the calendar month of now
func Summarize(list []orders.Order, now time.Time) Summary {
	loc := now.Location()

	todayCutoff := now.Add(-24 * time.Hour)
	weekStart, weekEnd := WeekRange(now)
	year, month, _ := now.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	daysInMonth := monthEnd.AddDate(0, 0, -1).Day()

	var s Summary
	s.ByDay = make([]DayPoint, daysInMonth)
	for i := range s.ByDay {
		s.ByDay[i].Day = i + 1
	}

	for _, o := range list {
		created := o.CreatedAt.In(loc)
		total := o.TotalCents()

		if created.After(todayCutoff) {
			s.Today.Count++
			s.Today.RevenueCents += total
		}
		if !created.Before(weekStart) && created.Before(weekEnd) {
			s.ThisWeek.Count++
			s.ThisWeek.RevenueCents += total
		}
		if !created.Before(monthStart) && created.Before(monthEnd) {
			s.ThisMonth.Count++
			s.ThisMonth.RevenueCents += total

			d := &s.ByDay[created.Day()-1]
			d.Count++
			d.Revenue = round2(d.Revenue + float64(total)/100.0)
		}
	}

	return s
}

// WeekRange returns Monday 00:00 of now's week and the following Monday
// 00:00 (exclusive end, i.e. Sunday 24:00).
func WeekRange(now time.Time) (start, end time.Time) {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	sinceMonday := (int(now.Weekday()) + 6) % 7
	start = midnight.AddDate(0, 0, -sinceMonday)
	end = start.AddDate(0, 0, 7)
	return start, end
}

var revenuePrinter = message.NewPrinter(language.English)

// FormatRevenue renders cents as locale-formatted currency units with
// grouped thousands, e.g. 123456789 -> "1,234,567.89".
func FormatRevenue(cents int64) string {
	units := float64(cents) / 100.0
	return revenuePrinter.Sprint(number.Decimal(units,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
