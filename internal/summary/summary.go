// Package summary computes per-category spending totals for a user over a
// calendar period.
package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
)

// Period selects the window a spending summary covers.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps the period query parameter onto a Period,
// case-insensitively. An empty value defaults to monthly.
func ParsePeriod(raw string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return PeriodMonthly, nil
	case "daily":
		return PeriodDaily, nil
	case "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("invalid period %q: must be one of daily, weekly, monthly", raw)
	}
}

// Start computes the first calendar day of the period containing now.
// Weeks begin on Monday.
func (p Period) Start(now time.Time) civil.Date {
	today := civil.DateOf(now)
	switch p {
	case PeriodDaily:
		return today
	case PeriodWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		return today.AddDays(-offset)
	default:
		return civil.Date{Year: today.Year, Month: today.Month, Day: 1}
	}
}

// CategoryTotal is the accumulated spend for one category.
type CategoryTotal struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}

// Aggregate accumulates per-category totals and the overall total.
// Transactions with no decoded amount are silently excluded. Categories are
// sorted descending by total; ties break ascending by category name so the
// ordering is deterministic.
func Aggregate(txs []domain.Transaction) (float64, []CategoryTotal) {
	totals := make(map[string]float64)
	var overall float64

	for _, tx := range txs {
		if tx.Amount == nil {
			continue
		}
		totals[tx.Category] += *tx.Amount
		overall += *tx.Amount
	}

	categories := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		categories = append(categories, CategoryTotal{Category: category, TotalAmount: total})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].TotalAmount != categories[j].TotalAmount {
			return categories[i].TotalAmount > categories[j].TotalAmount
		}
		return categories[i].Category < categories[j].Category
	})

	return overall, categories
}
