// Display formatting helpers for agency codes and attachment sizes. These
// feed the CLI output and log fields; the JSON API returns raw codes and
// byte counts and lets clients format them.
package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// AgencyLabel turns an agency code like "secretaria-educacao" into a
// human-readable label like "Secretaria Educacao". Unknown codes are
// formatted the same way, so callers need no fallback.
func AgencyLabel(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(code, "-", " "))
}

// SizeLabel formats a byte count for display, e.g. "2.0 kB".
func SizeLabel(n int64) string {
	if n < 0 {
		return ""
	}
	return humanize.Bytes(uint64(n))
}
