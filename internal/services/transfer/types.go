package transfer

// SendRequest initiates a transfer attempt.
type SendRequest struct {
	RecipientUpiID string  `json:"recipient_upi_id"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`

	UsedVoiceNavigation bool   `json:"used_voice_navigation"`
	UsedScreenReader    bool   `json:"used_screen_reader"`
	ConfirmationMethod  string `json:"confirmation_method"`
}

// ConfirmRequest reports which confirmation modalities were satisfied.
type ConfirmRequest struct {
	VoiceConfirmed     bool `json:"voice_confirmed"`
	VisualConfirmed    bool `json:"visual_confirmed"`
	BiometricConfirmed bool `json:"biometric_confirmed"`
}

// Summary aggregates a sender's completed transfers for display.
type Summary struct {
	TotalTransfers    int64   `json:"total_transfers"`
	TotalAmountSent   float64 `json:"total_amount_sent"`
	MonthlyTransfers  int64   `json:"monthly_transfers"`
	MonthlyAmountSent float64 `json:"monthly_amount_sent"`
	Balance           float64 `json:"balance"`
}
