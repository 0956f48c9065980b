package fraud

import (
	"log"
	"time"
)

// collectSignals reads the sender's transfer history. Read failures degrade
// to a zero bundle instead of failing the transfer attempt; ok reports
// whether the bundle is complete.
func (s *service) collectSignals(senderID uint, recipientUpiID string, fraudScore float64, now time.Time) (Signals, bool) {
	sig := Signals{
		TimeWindowMinutes: s.config.TimeWindowMinutes,
		FraudScore:        fraudScore,
	}

	windowStart := now.Add(-time.Duration(s.config.TimeWindowMinutes) * time.Minute)
	recent, err := s.signals.CountRecentAttempts(senderID, windowStart)
	if err != nil {
		log.Printf("fraud: velocity read failed for user %d: %v", senderID, err)
		return Signals{TimeWindowMinutes: s.config.TimeWindowMinutes}, false
	}
	sig.RecentAttemptCount = int(recent)

	avg, max, count, err := s.signals.CompletedAmountStats(senderID)
	if err != nil {
		log.Printf("fraud: history read failed for user %d: %v", senderID, err)
		return Signals{TimeWindowMinutes: s.config.TimeWindowMinutes}, false
	}
	sig.AverageCompletedAmount = avg
	sig.MaxCompletedAmount = max
	sig.CompletedCount = count

	prior, err := s.signals.CountCompletedToRecipient(senderID, recipientUpiID)
	if err != nil {
		log.Printf("fraud: recipient history read failed for user %d: %v", senderID, err)
		return Signals{TimeWindowMinutes: s.config.TimeWindowMinutes}, false
	}
	sig.PriorToRecipient = prior

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.signals.SumActiveAmountSince(senderID, startOfDay)
	if err != nil {
		log.Printf("fraud: daily total read failed for user %d: %v", senderID, err)
		return Signals{TimeWindowMinutes: s.config.TimeWindowMinutes}, false
	}
	sig.AmountToday = today

	return sig, true
}
