package transfer

import "errors"

// Validation errors: the request is rejected before any transfer is
// persisted, and the caller may retry with corrected input.
var (
	ErrAccountNotActive    = errors.New("account is not active")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrLimitExceeded       = errors.New("amount exceeds per-transaction limit")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidRecipient    = errors.New("invalid recipient")
)

// State errors: the transfer exists but is not eligible for the requested
// transition. The record is left unchanged.
var (
	ErrNotConfirmable      = errors.New("transfer cannot be confirmed in its current status")
	ErrNotCancellable      = errors.New("transfer cannot be cancelled")
	ErrCancelWindowExpired = errors.New("cancellation window expired")
)

// ErrTransferFailed is the generic settlement failure surfaced to callers;
// the detailed cause is appended to the transfer's error log.
var ErrTransferFailed = errors.New("transfer failed")
