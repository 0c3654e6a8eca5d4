package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sgc-amambai/contracts/model"
)

// Sort keys accepted by SortEntries
const (
	SortByID            = "id"
	SortBySubject       = "subject"
	SortByContractor    = "contractor"
	SortByValue         = "value"
	SortByEndDate       = "end_date"
	SortByDaysRemaining = "days_remaining"
)

var comparators = map[string]func(a, b model.Entry) int{
	SortByID: func(a, b model.Entry) int { return a.Contract.ID - b.Contract.ID },
	SortBySubject: func(a, b model.Entry) int {
		return strings.Compare(strings.ToLower(a.Contract.Subject), strings.ToLower(b.Contract.Subject))
	},
	SortByContractor: func(a, b model.Entry) int {
		return strings.Compare(strings.ToLower(a.Contract.Contractor), strings.ToLower(b.Contract.Contractor))
	},
	SortByValue:         func(a, b model.Entry) int { return a.Contract.Value.Cmp(b.Contract.Value) },
	SortByEndDate:       func(a, b model.Entry) int { return b.Contract.EndDate.DaysUntil(a.Contract.EndDate) },
	SortByDaysRemaining: func(a, b model.Entry) int { return a.Status.DaysRemaining - b.Status.DaysRemaining },
}

// SortEntries sorts entries in place by key. Ties keep their input order.
// An empty key leaves the order untouched.
func SortEntries(entries []model.Entry, key string, desc bool) error {
	if key == "" {
		return nil
	}
	cmp, ok := comparators[key]
	if !ok {
		return fmt.Errorf("%w: unknown sort key %q", model.ErrInvalidInput, key)
	}
	slices.SortStableFunc(entries, func(a, b model.Entry) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return nil
}
