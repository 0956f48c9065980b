package fraud

import (
	"fmt"
	"math"
	"time"
)

// A rule inspects one independent risk signal. Rules never mutate state and
// never exclude each other; the order they run in does not change the score.
type rule func(s Signals, amount, dailyLimit float64, cfg Config, now time.Time) (weight float64, reason string, hit bool)

var rules = []rule{
	velocityRule,
	largeAmountRule,
	anomalousAmountRule,
	newRecipientRule,
	offHoursRule,
	dailyLimitRule,
	elevatedScoreRule,
}

func velocityRule(s Signals, _, _ float64, cfg Config, _ time.Time) (float64, string, bool) {
	if s.RecentAttemptCount < cfg.VelocityThreshold {
		return 0, "", false
	}
	return WeightVelocity,
		fmt.Sprintf("high velocity: %d transfers in %d minutes", s.RecentAttemptCount, s.TimeWindowMinutes),
		true
}

func largeAmountRule(_ Signals, amount, _ float64, cfg Config, _ time.Time) (float64, string, bool) {
	if amount < cfg.AmountThreshold {
		return 0, "", false
	}
	return WeightLargeAmount, fmt.Sprintf("large amount: %.2f", amount), true
}

func anomalousAmountRule(s Signals, amount, _ float64, _ Config, _ time.Time) (float64, string, bool) {
	if s.CompletedCount == 0 {
		return 0, "", false
	}
	if amount > s.AverageCompletedAmount*3 || amount > s.MaxCompletedAmount*1.5 {
		return WeightAnomalousAmount, "amount significantly higher than usual pattern", true
	}
	return 0, "", false
}

func newRecipientRule(s Signals, amount, _ float64, cfg Config, _ time.Time) (float64, string, bool) {
	if s.PriorToRecipient > 0 || amount <= cfg.NewRecipientThreshold {
		return 0, "", false
	}
	return WeightNewRecipient,
		fmt.Sprintf("first transfer to new recipient with amount %.2f", amount),
		true
}

func offHoursRule(_ Signals, _, _ float64, _ Config, now time.Time) (float64, string, bool) {
	hour := now.Hour()
	if hour >= 23 || hour <= 5 {
		return WeightOffHours, "transfer at unusual hour", true
	}
	return 0, "", false
}

func dailyLimitRule(s Signals, amount, dailyLimit float64, _ Config, _ time.Time) (float64, string, bool) {
	if s.AmountToday+amount <= dailyLimit {
		return 0, "", false
	}
	return WeightDailyLimit,
		fmt.Sprintf("exceeds daily limit: %.2f > %.2f", s.AmountToday+amount, dailyLimit),
		true
}

func elevatedScoreRule(s Signals, _, _ float64, _ Config, _ time.Time) (float64, string, bool) {
	if s.FraudScore <= 50 {
		return 0, "", false
	}
	// Fractional weight, added as-is before capping.
	return s.FraudScore * 0.2,
		fmt.Sprintf("sender has elevated fraud score: %.0f", s.FraudScore),
		true
}

// Score combines the rule outcomes into a bounded verdict. It is a pure
// function of its inputs; the caller supplies the wall clock.
func Score(s Signals, amount, dailyLimit float64, cfg Config, now time.Time) Verdict {
	v := Verdict{
		IsNewRecipient:         s.PriorToRecipient == 0,
		RecentTransactionCount: s.RecentAttemptCount,
		TimeWindowMinutes:      s.TimeWindowMinutes,
	}

	var total float64
	for _, r := range rules {
		if weight, reason, hit := r(s, amount, dailyLimit, cfg, now); hit {
			total += weight
			v.Reasons = append(v.Reasons, reason)
		}
	}

	v.RiskScore = math.Min(total, 100)
	v.Flagged = v.RiskScore >= cfg.FlagThreshold
	return v
}
