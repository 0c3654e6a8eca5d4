// Package lifecycle turns contract end dates into risk tiers and rolls
// them up into portfolio metrics. It performs no I/O and never reads the
// clock: the reference date is always passed in.
package lifecycle

import (
	"fmt"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
)

// Inclusive upper bounds, in days remaining, of the critical and attention tiers.
const (
	CriticalDays  = 30
	AttentionDays = 90
)

// Classify returns the tier of a contract ending on end, seen from ref.
func Classify(end, ref date.Date) model.StatusResult {
	days := ref.DaysUntil(end)
	return model.StatusResult{Tier: tierFor(days), DaysRemaining: days}
}

func tierFor(days int) model.Tier {
	switch {
	case days < 0:
		return model.TierExpired
	case days <= CriticalDays:
		return model.TierCritical
	case days <= AttentionDays:
		return model.TierAttention
	default:
		return model.TierCurrent
	}
}

// ClassifyString is Classify for an end date written as YYYY-MM-DD.
func ClassifyString(end string, ref date.Date) (model.StatusResult, error) {
	d, err := date.Parse(end)
	if err != nil {
		return model.StatusResult{}, fmt.Errorf("%w: end date: %v", model.ErrInvalidInput, err)
	}
	return Classify(d, ref), nil
}
