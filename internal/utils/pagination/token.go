package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Page size bounds shared by list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor positions a keyset page strictly after the row sorted at At with id ID.
type Cursor struct {
	At time.Time
	ID string
}

// EncodeCursor creates an opaque token from a sort timestamp and a row id.
// The URL-safe alphabet keeps the token usable as a query parameter.
func EncodeCursor(at time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", at.UTC().Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor. A malformed token is
// reported as a validation error on nextToken.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, apperrors.NewValidationError("nextToken", "is not a valid page token")
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, apperrors.NewValidationError("nextToken", "is not a valid page token")
	}
	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, apperrors.NewValidationError("nextToken", "is not a valid page token")
	}
	return Cursor{At: at, ID: parts[1]}, nil
}

// ClampLimit applies DefaultLimit to unset limits and caps them at MaxLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// NextToken returns the token for the page after a result of n rows fetched
// with limit+1, or nil when there is no further page.
func NextToken(n, limit int, last func() (time.Time, string)) *string {
	if n <= limit {
		return nil
	}
	at, id := last()
	token := EncodeCursor(at, id)
	return &token
}
