package stats

import (
	"testing"
	"time"

	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/orders"
)

func orderAt(t *testing.T, created time.Time, items []orders.LineItem) orders.Order {
	t.Helper()
	raw, err := orders.EncodeLineItems(items)
	if err != nil {
		t.Fatalf("encode line items: %v", err)
	}
	return orders.Order{LineItemsJSON: raw, CreatedAt: created}
}

func TestOrderTotalCents(t *testing.T) {
	o := orderAt(t, time.Now(), []orders.LineItem{
		{ProductName: "Tee", Quantity: 2, UnitPriceCents: 1000},
		{ProductName: "Mug", Quantity: 1, UnitPriceCents: 500},
	})
	if got := o.TotalCents(); got != 2500 {
		t.Errorf("expected 2500 cents, got %d", got)
	}
	if got := FormatRevenue(o.TotalCents()); got != "25.00" {
		t.Errorf("expected '25.00', got %q", got)
	}
}

func TestWeekRange(t *testing.T) {
	loc := time.UTC

	// Wednesday 2024-05-15
	start, end := WeekRange(time.Date(2024, time.May, 15, 12, 30, 0, 0, loc))
	if !start.Equal(time.Date(2024, time.May, 13, 0, 0, 0, 0, loc)) {
		t.Errorf("week start: got %v", start)
	}
	if !end.Equal(time.Date(2024, time.May, 20, 0, 0, 0, 0, loc)) {
		t.Errorf("week end: got %v", end)
	}

	// Monday maps onto itself
	start, _ = WeekRange(time.Date(2024, time.May, 13, 0, 0, 1, 0, loc))
	if !start.Equal(time.Date(2024, time.May, 13, 0, 0, 0, 0, loc)) {
		t.Errorf("monday week start: got %v", start)
	}

	// Sunday still belongs to the week that began the previous Monday
	start, end = WeekRange(time.Date(2024, time.May, 19, 23, 59, 0, 0, loc))
	if !start.Equal(time.Date(2024, time.May, 13, 0, 0, 0, 0, loc)) {
		t.Errorf("sunday week start: got %v", start)
	}
	if !end.Equal(time.Date(2024, time.May, 20, 0, 0, 0, 0, loc)) {
		t.Errorf("sunday week end: got %v", end)
	}
}

func TestSummarizeBuckets(t *testing.T) {
	loc := time.UTC
	// Wednesday 2024-05-15 12:00
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, loc)

	items := []orders.LineItem{{ProductName: "Tee", Quantity: 2, UnitPriceCents: 1000}, {ProductName: "Mug", Quantity: 1, UnitPriceCents: 500}}

	list := []orders.Order{
		// 1h ago: today + week + month
		orderAt(t, now.Add(-time.Hour), items),
		// Monday 00:30 same week: week + month, outside the 24h window
		orderAt(t, time.Date(2024, time.May, 13, 0, 30, 0, 0, loc), items),
		// Sunday 23:00 before the week started: month only
		orderAt(t, time.Date(2024, time.May, 12, 23, 0, 0, 0, loc), items),
		// previous month: nothing
		orderAt(t, time.Date(2024, time.April, 30, 12, 0, 0, 0, loc), items),
		// next month: nothing
		orderAt(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, loc), items),
	}

	s := Summarize(list, now)

	if s.Today.Count != 1 {
		t.Errorf("today count: expected 1, got %d", s.Today.Count)
	}
	if s.Today.RevenueCents != 2500 {
		t.Errorf("today revenue: expected 2500, got %d", s.Today.RevenueCents)
	}

	if s.ThisWeek.Count != 2 {
		t.Errorf("week count: expected 2, got %d", s.ThisWeek.Count)
	}
	if s.ThisWeek.RevenueCents != 5000 {
		t.Errorf("week revenue: expected 5000, got %d", s.ThisWeek.RevenueCents)
	}

	if s.ThisMonth.Count != 3 {
		t.Errorf("month count: expected 3, got %d", s.ThisMonth.Count)
	}
	if s.ThisMonth.RevenueCents != 7500 {
		t.Errorf("month revenue: expected 7500, got %d", s.ThisMonth.RevenueCents)
	}
}

func TestSummarizeByDaySeries(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, loc)

	list := []orders.Order{
		orderAt(t, time.Date(2024, time.May, 15, 9, 0, 0, 0, loc), []orders.LineItem{{Quantity: 1, UnitPriceCents: 1234}}),
		orderAt(t, time.Date(2024, time.May, 15, 10, 0, 0, 0, loc), []orders.LineItem{{Quantity: 1, UnitPriceCents: 1}}),
		orderAt(t, time.Date(2024, time.May, 3, 10, 0, 0, 0, loc), []orders.LineItem{{Quantity: 3, UnitPriceCents: 100}}),
	}

	s := Summarize(list, now)

	if len(s.ByDay) != 31 {
		t.Fatalf("May has 31 days, got %d points", len(s.ByDay))
	}
	if s.ByDay[0].Day != 1 || s.ByDay[30].Day != 31 {
		t.Errorf("day numbering wrong: first=%d last=%d", s.ByDay[0].Day, s.ByDay[30].Day)
	}

	d15 := s.ByDay[14]
	if d15.Count != 2 {
		t.Errorf("day 15 count: expected 2, got %d", d15.Count)
	}
	if d15.Revenue != 12.35 {
		t.Errorf("day 15 revenue: expected 12.35, got %v", d15.Revenue)
	}

	d3 := s.ByDay[2]
	if d3.Count != 1 || d3.Revenue != 3.00 {
		t.Errorf("day 3: expected count 1 revenue 3.00, got %+v", d3)
	}

	// untouched day stays zeroed
	if s.ByDay[20].Count != 0 || s.ByDay[20].Revenue != 0 {
		t.Errorf("day 21 should be empty, got %+v", s.ByDay[20])
	}
}

func TestFormatRevenueGrouping(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{2500, "25.00"},
		{123456789, "1,234,567.89"},
		{100000, "1,000.00"},
	}
	for _, tc := range cases {
		if got := FormatRevenue(tc.cents); got != tc.want {
			t.Errorf("FormatRevenue(%d): expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}
