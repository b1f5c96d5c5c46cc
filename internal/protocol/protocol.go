// Package protocol generates the human-shareable identifiers handed to
// citizens when a request is submitted. A protocol looks like
// "20260828-K3F9Q2": the local calendar date, a hyphen, and six uppercase
// base36 characters. The date prefix keeps protocols roughly sortable and
// easy to read over the phone; the random token makes same-day collisions
// practically negligible. Uniqueness is not guaranteed here — the store
// enforces it with a primary key, and callers retry on conflict.
package protocol

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// alphabet is the base36 token character set (digits then uppercase letters).
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// tokenLen is the number of random characters after the date prefix.
const tokenLen = 6

// Pattern matches well-formed protocol identifiers.
var Pattern = regexp.MustCompile(`^\d{8}-[A-Z0-9]{6}$`)

// Generate returns a fresh protocol for the current local date. It never
// fails: randomness comes from a UUIDv4, whose generation does not error.
func Generate() string {
	return generateAt(time.Now())
}

// generateAt builds a protocol for the given instant. Split out so tests can
// pin the date prefix.
func generateAt(now time.Time) string {
	buf := make([]byte, 0, 8+1+tokenLen)
	buf = now.AppendFormat(buf, "20060102")
	buf = append(buf, '-')

	id := uuid.New()
	for i := 0; i < tokenLen; i++ {
		buf = append(buf, alphabet[int(id[i])%len(alphabet)])
	}
	return string(buf)
}

// Valid reports whether p has the canonical protocol shape. It does not (and
// cannot) check that p was ever issued.
func Valid(p string) bool {
	return Pattern.MatchString(p)
}
