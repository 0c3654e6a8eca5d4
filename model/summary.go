package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSummary holds the portfolio-level metrics of a contract collection
type PortfolioSummary struct {
	TotalCount      int                          `json:"total_count"`
	TotalValue      decimal.Decimal              `json:"total_value"`
	TierCounts      map[Tier]int                 `json:"tier_counts"`
	ValueByCategory map[Category]decimal.Decimal `json:"value_by_category"`
	Calendar        []MonthCount                 `json:"calendar"`
}

// MonthCount is one bucket of the expiration calendar
type MonthCount struct {
	Year  int
	Month time.Month
	Count int
}

// Key returns the bucket month formatted as YYYY-MM
func (m MonthCount) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before reports whether m is an earlier month than x
func (m MonthCount) Before(x MonthCount) bool {
	if m.Year != x.Year {
		return m.Year < x.Year
	}
	return m.Month < x.Month
}

func (m MonthCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month string `json:"month"`
		Count int    `json:"count"`
	}{m.Key(), m.Count})
}
