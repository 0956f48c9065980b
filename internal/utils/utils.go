package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTransactionID creates the public transaction identifier exposed
// to clients and used in API paths.
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString())
}
