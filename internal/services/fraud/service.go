// Package fraud scores transfer attempts before any money moves.
//
// The scorer is a pipeline of independent, explainable rules over an
// immutable signal snapshot rather than a trained model: every triggered
// rule adds a fixed weight and a human-readable reason. False positives are
// acceptable; a flagged transfer is delayed and annotated, never blocked.
package fraud

import (
	"context"
	"log"
	"time"

	"sahay/internal/models"
	"sahay/internal/repositories/cache"
)

const statsCacheTTL = 2 * time.Minute

type service struct {
	signals SignalReader
	users   UserReader
	cache   *cache.CacheService
	config  Config
	now     func() time.Time
}

// NewService creates a new fraud service. cache may be nil.
func NewService(signals SignalReader, users UserReader, cacheSvc *cache.CacheService, cfg Config) Service {
	if signals == nil {
		panic("signal reader is required")
	}
	if users == nil {
		panic("user reader is required")
	}

	return &service{
		signals: signals,
		users:   users,
		cache:   cacheSvc,
		config:  cfg,
		now:     time.Now,
	}
}

// Evaluate scores one attempted transfer. It never returns an error: when
// the signal reads fail the attempt is scored as zero risk and the failure
// is logged, so a degraded signal store cannot block transfers.
func (s *service) Evaluate(_ context.Context, sender *models.User, recipientUpiID string, amount float64) Verdict {
	now := s.now()

	sig, ok := s.collectSignals(sender.ID, recipientUpiID, sender.FraudScore, now)
	if !ok {
		return Verdict{
			Reasons:           []string{"fraud signals unavailable"},
			TimeWindowMinutes: s.config.TimeWindowMinutes,
		}
	}

	verdict := Score(sig, amount, sender.DailyLimit, s.config, now)
	if verdict.Flagged {
		log.Printf("fraud: high-risk transfer for user %d: score %.1f, reasons %v",
			sender.ID, verdict.RiskScore, verdict.Reasons)
	}
	return verdict
}

// GetStats builds the fraud summary shown to the user: standing score, risk
// tier, recently flagged transfers and advisory recommendations.
func (s *service) GetStats(ctx context.Context, userID uint) (*Stats, error) {
	if s.cache != nil {
		var cached Stats
		if found, err := s.cache.Get(ctx, s.cache.FraudStatsKey(userID), &cached); err == nil && found {
			return &cached, nil
		}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	flagged, err := s.signals.RecentFlagged(userID, recentFlaggedLimit)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		FraudScore:      user.FraudScore,
		RiskLevel:       riskLevel(user.FraudScore),
		FlaggedCount:    len(flagged),
		RecentFlagged:   flagged,
		Recommendations: recommendations(user.FraudScore, len(flagged)),
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, s.cache.FraudStatsKey(userID), stats, statsCacheTTL); err != nil {
			log.Printf("fraud: failed to cache stats for user %d: %v", userID, err)
		}
	}
	return stats, nil
}

func riskLevel(score float64) string {
	switch {
	case score > 70:
		return riskLevelHigh
	case score >= 40:
		return riskLevelMedium
	default:
		return riskLevelLow
	}
}

func recommendations(score float64, flaggedCount int) []string {
	var recs []string

	if score > 50 {
		recs = append(recs, "Your account shows unusual activity. Consider reviewing recent transfers.")
	}
	if flaggedCount > 0 {
		recs = append(recs, "Some of your transfers were flagged. Enable biometric confirmation for added security.")
	}
	if score < 30 && flaggedCount == 0 {
		recs = append(recs, "Your account security is excellent! Keep following safe transfer practices.")
	} else {
		recs = append(recs, "Enable transfer alerts to stay informed of all account activity.")
		recs = append(recs, "Add trusted contacts to whitelist frequent recipients.")
		recs = append(recs, "Set conservative transfer limits for additional protection.")
	}

	return recs
}
