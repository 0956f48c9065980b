package fraud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	afternoon = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	midnight  = time.Date(2025, 6, 10, 0, 30, 0, 0, time.UTC)
)

func TestVelocityRule(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		recent  int
		wantHit bool
	}{
		{"below threshold", 4, false},
		{"at threshold", 5, true},
		{"above threshold", 9, true},
		{"no activity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Signals{RecentAttemptCount: tt.recent, TimeWindowMinutes: 30}
			weight, reason, hit := velocityRule(s, 100, 50000, cfg, afternoon)
			assert.Equal(t, tt.wantHit, hit)
			if tt.wantHit {
				assert.Equal(t, WeightVelocity, weight)
				assert.Contains(t, reason, "high velocity")
			}
		})
	}
}

func TestLargeAmountRule(t *testing.T) {
	cfg := DefaultConfig()

	_, _, hit := largeAmountRule(Signals{}, 49999, 0, cfg, afternoon)
	assert.False(t, hit)

	weight, reason, hit := largeAmountRule(Signals{}, 50000, 0, cfg, afternoon)
	assert.True(t, hit)
	assert.Equal(t, WeightLargeAmount, weight)
	assert.Contains(t, reason, "large amount")
}

func TestAnomalousAmountRule(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("no history never fires", func(t *testing.T) {
		s := Signals{CompletedCount: 0}
		_, _, hit := anomalousAmountRule(s, 1000000, 0, cfg, afternoon)
		assert.False(t, hit)
	})

	t.Run("triple the average", func(t *testing.T) {
		s := Signals{CompletedCount: 10, AverageCompletedAmount: 1000, MaxCompletedAmount: 5000}
		_, _, hit := anomalousAmountRule(s, 3001, 0, cfg, afternoon)
		assert.True(t, hit)
	})

	t.Run("over 1.5x the max", func(t *testing.T) {
		s := Signals{CompletedCount: 10, AverageCompletedAmount: 4000, MaxCompletedAmount: 5000}
		_, _, hit := anomalousAmountRule(s, 7501, 0, cfg, afternoon)
		assert.True(t, hit)
	})

	t.Run("within pattern", func(t *testing.T) {
		s := Signals{CompletedCount: 10, AverageCompletedAmount: 1000, MaxCompletedAmount: 5000}
		_, _, hit := anomalousAmountRule(s, 2500, 0, cfg, afternoon)
		assert.False(t, hit)
	})
}

func TestNewRecipientRule(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("new recipient with material amount", func(t *testing.T) {
		s := Signals{PriorToRecipient: 0}
		weight, _, hit := newRecipientRule(s, 10001, 0, cfg, afternoon)
		assert.True(t, hit)
		assert.Equal(t, WeightNewRecipient, weight)
	})

	t.Run("new recipient with small amount", func(t *testing.T) {
		s := Signals{PriorToRecipient: 0}
		_, _, hit := newRecipientRule(s, 5000, 0, cfg, afternoon)
		assert.False(t, hit)
	})

	t.Run("known recipient", func(t *testing.T) {
		s := Signals{PriorToRecipient: 3}
		_, _, hit := newRecipientRule(s, 60000, 0, cfg, afternoon)
		assert.False(t, hit)
	})
}

func TestOffHoursRule(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		hour    int
		wantHit bool
	}{
		{23, true},
		{0, true},
		{3, true},
		{5, true},
		{6, false},
		{14, false},
		{22, false},
	}

	for _, tt := range tests {
		now := time.Date(2025, 6, 10, tt.hour, 15, 0, 0, time.UTC)
		_, _, hit := offHoursRule(Signals{}, 100, 0, cfg, now)
		assert.Equal(t, tt.wantHit, hit, "hour %d", tt.hour)
	}
}

func TestDailyLimitRule(t *testing.T) {
	cfg := DefaultConfig()

	_, _, hit := dailyLimitRule(Signals{AmountToday: 45000}, 5000, 50000, cfg, afternoon)
	assert.False(t, hit, "exactly at the limit does not fire")

	weight, reason, hit := dailyLimitRule(Signals{AmountToday: 45000}, 5001, 50000, cfg, afternoon)
	assert.True(t, hit)
	assert.Equal(t, WeightDailyLimit, weight)
	assert.Contains(t, reason, "exceeds daily limit")
}

func TestElevatedScoreRule(t *testing.T) {
	cfg := DefaultConfig()

	_, _, hit := elevatedScoreRule(Signals{FraudScore: 50}, 100, 0, cfg, afternoon)
	assert.False(t, hit)

	weight, _, hit := elevatedScoreRule(Signals{FraudScore: 60}, 100, 0, cfg, afternoon)
	assert.True(t, hit)
	assert.InDelta(t, 12.0, weight, 0.001, "weight is fractional: score x 0.2")
}

func TestScore_QuietAfternoonTransfer(t *testing.T) {
	// Fresh account, first transfer of the day, modest amount at 14:00.
	s := Signals{TimeWindowMinutes: 30}
	v := Score(s, 5000, 50000, DefaultConfig(), afternoon)

	assert.Equal(t, 0.0, v.RiskScore)
	assert.False(t, v.Flagged)
	assert.Empty(t, v.Reasons)
	assert.True(t, v.IsNewRecipient)
}

func TestScore_VelocityLargeAmountDailyCap(t *testing.T) {
	// Sixth transfer in the window, 60000 to a known recipient: velocity
	// (30) + large amount (25) + daily cap (20) = 75, flagged.
	s := Signals{
		RecentAttemptCount: 6,
		TimeWindowMinutes:  30,
		PriorToRecipient:   1,
		AmountToday:        0,
	}
	v := Score(s, 60000, 50000, DefaultConfig(), afternoon)

	assert.Equal(t, 75.0, v.RiskScore)
	assert.True(t, v.Flagged)
	assert.Len(t, v.Reasons, 3)
	assert.Equal(t, 6, v.RecentTransactionCount)
	assert.False(t, v.IsNewRecipient)
}

func TestScore_CapsAtHundred(t *testing.T) {
	s := Signals{
		RecentAttemptCount:     10,
		TimeWindowMinutes:      30,
		CompletedCount:         5,
		AverageCompletedAmount: 100,
		MaxCompletedAmount:     200,
		PriorToRecipient:       0,
		AmountToday:            49000,
		FraudScore:             90,
	}
	// Every rule fires: 30+25+20+15+10+20+18 = 138, capped at 100.
	v := Score(s, 60000, 50000, DefaultConfig(), midnight)

	assert.Equal(t, 100.0, v.RiskScore)
	assert.True(t, v.Flagged)
	assert.Len(t, v.Reasons, 7)
}

func TestScore_FlagThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()

	// 30 + 25 = 55 < 70: not flagged.
	s := Signals{RecentAttemptCount: 6, TimeWindowMinutes: 30, PriorToRecipient: 1}
	v := Score(s, 50000, 200000, cfg, afternoon)
	assert.Equal(t, 55.0, v.RiskScore)
	assert.False(t, v.Flagged)

	// Exactly at the threshold is flagged.
	s.AmountToday = 200000
	v = Score(s, 50000, 200000, cfg, afternoon)
	assert.Equal(t, 75.0, v.RiskScore)
	assert.True(t, v.Flagged)
}
