package requestid

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	// Header carries the correlation id on both requests and responses.
	Header = "X-Request-ID"

	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// New generates a fresh correlation id of the form "<unix-ms>-<8 hex chars>".
// The timestamp prefix keeps ids roughly sortable in log output.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Valid reports whether an upstream-supplied id is acceptable for reuse.
func Valid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
