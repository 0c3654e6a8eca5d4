// Package display turns engine results into the strings and orderings the
// dashboard shows.
package display

import (
	"fmt"

	"github.com/sgc-amambai/contracts/model"
)

// Row highlight classes
const (
	HighlightCritical  = "critical"
	HighlightAttention = "attention"
	HighlightOK        = "ok"
)

// Label returns the human status text, e.g. "CRITICAL (12 days)".
func Label(s model.StatusResult) string {
	switch s.Tier {
	case model.TierExpired:
		return "EXPIRED"
	case model.TierCritical:
		return fmt.Sprintf("CRITICAL (%d days)", s.DaysRemaining)
	case model.TierAttention:
		return fmt.Sprintf("ATTENTION (%d days)", s.DaysRemaining)
	case model.TierCurrent:
		return "CURRENT"
	}
	return string(s.Tier)
}

// Highlight returns the ledger row class for a tier. Expired rows share the critical colour.
func Highlight(t model.Tier) string {
	switch t {
	case model.TierExpired, model.TierCritical:
		return HighlightCritical
	case model.TierAttention:
		return HighlightAttention
	}
	return HighlightOK
}
