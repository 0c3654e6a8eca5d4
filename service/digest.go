package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/lifecycle"
	"github.com/sgc-amambai/contracts/model"
)

// ExpiryDigest logs the tier counts of every live session
type ExpiryDigest struct {
	sessions *SessionStore
	today    func() date.Date
	log      *slog.Logger
}

// NewExpiryDigest creates the digest job. today supplies the reference date at each run.
func NewExpiryDigest(sessions *SessionStore, today func() date.Date) *ExpiryDigest {
	return &ExpiryDigest{
		sessions: sessions,
		today:    today,
		log:      slog.Default().With("job", "expiry_digest"),
	}
}

func (j *ExpiryDigest) Name() string { return "expiry_digest" }

func (j *ExpiryDigest) Run() error {
	ref := j.today()

	var errs []error
	for _, sess := range j.sessions.Sessions() {
		_, summary, err := lifecycle.Summarize(sess.Contracts.Snapshot(), ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("session %s: %w", sess.ID, err))
			continue
		}

		attrs := []any{
			"session_id", sess.ID,
			"reference_date", ref.String(),
			"total", summary.TotalCount,
			"current", summary.TierCounts[model.TierCurrent],
			"attention", summary.TierCounts[model.TierAttention],
			"critical", summary.TierCounts[model.TierCritical],
			"expired", summary.TierCounts[model.TierExpired],
		}
		if summary.TierCounts[model.TierCritical]+summary.TierCounts[model.TierExpired] > 0 {
			j.log.Warn("contracts need action", attrs...)
		} else {
			j.log.Info("portfolio digest", attrs...)
		}
	}
	return errors.Join(errs...)
}
