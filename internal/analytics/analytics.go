// Package analytics computes spending rollups over a set of expense
// records: the overall total, per-category totals, and time-bucketed
// trends by day, week and month.
package analytics

import (
	"sort"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"
)

// TrendPoint is one time bucket: the bucket start date (YYYY-MM-DD)
// and the summed amount for records falling into it.
type TrendPoint struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// Report is the aggregation result for a set of expenses.
// Collections are always non-nil; an empty input yields a zero total,
// an empty breakdown and empty trend lists.
type Report struct {
	TotalExpense      string            `json:"total_expense"`
	CategoryBreakdown map[string]string `json:"category_breakdown"`
	DailyTrends       []TrendPoint      `json:"daily_trends"`
	WeeklyTrends      []TrendPoint      `json:"weekly_trends"`
	MonthlyTrends     []TrendPoint      `json:"monthly_trends"`
}

// Summarize aggregates expenses in a single pass: amounts are summed in
// cents per category and per truncated-date bucket, then each trend is
// sorted ascending by bucket start. Only buckets with at least one
// record appear; there is no gap filling.
func Summarize(expenses []models.Expense) *Report {
	var totalCent int64
	byCategory := make(map[string]int64)
	byDay := make(map[string]int64)
	byWeek := make(map[string]int64)
	byMonth := make(map[string]int64)

	for i := range expenses {
		e := &expenses[i]
		totalCent += e.AmountCent
		byCategory[e.Category] += e.AmountCent
		byDay[truncDay(e.Date)] += e.AmountCent
		byWeek[truncWeek(e.Date)] += e.AmountCent
		byMonth[truncMonth(e.Date)] += e.AmountCent
	}

	breakdown := make(map[string]string, len(byCategory))
	for cat, cent := range byCategory {
		breakdown[cat] = util.FormatCent(cent)
	}

	return &Report{
		TotalExpense:      util.FormatCent(totalCent),
		CategoryBreakdown: breakdown,
		DailyTrends:       sortedTrend(byDay),
		WeeklyTrends:      sortedTrend(byWeek),
		MonthlyTrends:     sortedTrend(byMonth),
	}
}

// sortedTrend converts a bucket map into a list ordered by bucket start.
// Bucket keys are ISO dates, so string order is date order.
func sortedTrend(buckets map[string]int64) []TrendPoint {
	points := make([]TrendPoint, 0, len(buckets))
	for date, cent := range buckets {
		points = append(points, TrendPoint{Date: date, Total: util.FormatCent(cent)})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

func truncDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// truncWeek maps a date to the Monday starting its ISO week.
func truncWeek(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

func truncMonth(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Format("2006-01-02")
}
