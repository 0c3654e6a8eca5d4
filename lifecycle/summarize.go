package lifecycle

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
)

// Summarize classifies every contract against ref and aggregates the results.
//
// The returned entries follow the input order. The first invalid contract
// aborts the whole call with an error matching model.ErrValidation; an empty
// input is not an error.
func Summarize(contracts []model.Contract, ref date.Date) ([]model.Entry, model.PortfolioSummary, error) {
	if ref.IsZero() {
		return nil, model.PortfolioSummary{}, fmt.Errorf("%w: reference date is required", model.ErrInvalidInput)
	}

	entries := make([]model.Entry, 0, len(contracts))
	summary := model.PortfolioSummary{
		TotalValue:      decimal.Zero,
		TierCounts:      make(map[model.Tier]int, len(model.Tiers)),
		ValueByCategory: make(map[model.Category]decimal.Decimal),
		Calendar:        []model.MonthCount{},
	}
	for _, tier := range model.Tiers {
		summary.TierCounts[tier] = 0
	}

	months := make(map[model.MonthCount]int)
	for _, c := range contracts {
		if err := c.Validate(); err != nil {
			return nil, model.PortfolioSummary{}, err
		}

		status := Classify(c.EndDate, ref)
		entries = append(entries, model.Entry{Contract: c, Status: status})

		summary.TotalCount++
		summary.TotalValue = summary.TotalValue.Add(c.Value)
		summary.TierCounts[status.Tier]++
		if v, ok := summary.ValueByCategory[c.Category]; ok {
			summary.ValueByCategory[c.Category] = v.Add(c.Value)
		} else {
			summary.ValueByCategory[c.Category] = c.Value
		}
		months[model.MonthCount{Year: c.EndDate.Year(), Month: c.EndDate.Month()}]++
	}

	for m, n := range months {
		m.Count = n
		summary.Calendar = append(summary.Calendar, m)
	}
	slices.SortFunc(summary.Calendar, func(a, b model.MonthCount) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})

	return entries, summary, nil
}
