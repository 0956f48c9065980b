package fraud

import "sahay/internal/config"

// Rule weights
const (
	WeightVelocity        = 30.0
	WeightLargeAmount     = 25.0
	WeightAnomalousAmount = 20.0
	WeightNewRecipient    = 15.0
	WeightOffHours        = 10.0
	WeightDailyLimit      = 20.0
)

// FlaggedScorePenalty is added to the sender's standing fraud score when a
// transfer is flagged, capped at 100. This is the only automatic increase;
// the score never decays.
const FlaggedScorePenalty = 10.0

// Risk level boundaries for the stats summary.
const (
	riskLevelLow    = "Low"
	riskLevelMedium = "Medium"
	riskLevelHigh   = "High"
)

const recentFlaggedLimit = 10

// Config holds the fraud detection thresholds.
type Config struct {
	// VelocityThreshold is the number of recent attempts within the window
	// at which the velocity rule fires.
	VelocityThreshold int
	// TimeWindowMinutes is the lookback window for the velocity count.
	TimeWindowMinutes int
	// AmountThreshold is the absolute large-amount trigger, in rupees.
	AmountThreshold float64
	// NewRecipientThreshold is the material-amount trigger for first-time
	// recipients, in rupees.
	NewRecipientThreshold float64
	// FlagThreshold is the risk score at or above which a transfer is flagged.
	FlagThreshold float64
}

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() Config {
	return Config{
		VelocityThreshold:     5,
		TimeWindowMinutes:     30,
		AmountThreshold:       50000,
		NewRecipientThreshold: 10000,
		FlagThreshold:         70,
	}
}

// ConfigFromEnv reads thresholds from the environment, falling back to the
// defaults.
func ConfigFromEnv() Config {
	def := DefaultConfig()
	return Config{
		VelocityThreshold:     config.GetIntEnv("FRAUD_VELOCITY_THRESHOLD", def.VelocityThreshold),
		TimeWindowMinutes:     config.GetIntEnv("FRAUD_TIME_WINDOW_MINUTES", def.TimeWindowMinutes),
		AmountThreshold:       config.GetFloatEnv("FRAUD_AMOUNT_THRESHOLD", def.AmountThreshold),
		NewRecipientThreshold: config.GetFloatEnv("FRAUD_NEW_RECIPIENT_THRESHOLD", def.NewRecipientThreshold),
		FlagThreshold:         config.GetFloatEnv("FRAUD_RISK_SCORE_THRESHOLD", def.FlagThreshold),
	}
}
