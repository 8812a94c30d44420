package usecase

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// transactionID builds a prefixed short id used to correlate log events
// of one request, e.g. "SHIP-3fa09c21".
func transactionID(prefix string) string {
	id := uuid.New()
	return prefix + "-" + hex.EncodeToString(id[:4])
}

// returnID builds an upper-cased return identifier, e.g. "RET-3FA09C21".
func returnID() string {
	id := uuid.New()
	return "RET-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
