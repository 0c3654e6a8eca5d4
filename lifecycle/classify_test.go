package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
)

var ref = date.MustParse("2024-03-20")

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		offset int
		tier   model.Tier
	}{
		{-400, model.TierExpired},
		{-1, model.TierExpired},
		{0, model.TierCritical},
		{1, model.TierCritical},
		{30, model.TierCritical},
		{31, model.TierAttention},
		{90, model.TierAttention},
		{91, model.TierCurrent},
		{10000, model.TierCurrent},
	}
	for _, tt := range tests {
		got := Classify(ref.Add(tt.offset), ref)
		assert.Equal(t, tt.tier, got.Tier, "offset %d", tt.offset)
		assert.Equal(t, tt.offset, got.DaysRemaining, "offset %d", tt.offset)
	}
}

func TestClassifyPartitionsDayLine(t *testing.T) {
	prev := model.TierExpired
	changes := map[int]model.Tier{}
	for days := -200; days <= 200; days++ {
		got := Classify(ref.Add(days), ref).Tier
		require.Contains(t, model.Tiers, got)
		if got != prev {
			changes[days] = got
			prev = got
		}
	}
	assert.Equal(t, map[int]model.Tier{
		0:  model.TierCritical,
		31: model.TierAttention,
		91: model.TierCurrent,
	}, changes)
}

func TestClassifySameDay(t *testing.T) {
	assert.Equal(t, model.StatusResult{Tier: model.TierCritical, DaysRemaining: 0}, Classify(ref, ref))
}

func TestClassifyAcrossYearEnd(t *testing.T) {
	got := Classify(date.MustParse("2025-01-15"), date.MustParse("2024-12-20"))
	assert.Equal(t, model.StatusResult{Tier: model.TierCritical, DaysRemaining: 26}, got)
}

func TestClassifyString(t *testing.T) {
	got, err := ClassifyString("2024-04-24", ref)
	require.NoError(t, err)
	assert.Equal(t, model.StatusResult{Tier: model.TierAttention, DaysRemaining: 35}, got)

	for _, bad := range []string{"", "24/04/2024", "2024-13-01", "soon"} {
		_, err := ClassifyString(bad, ref)
		assert.ErrorIs(t, err, model.ErrInvalidInput, "input %q", bad)
	}
}
