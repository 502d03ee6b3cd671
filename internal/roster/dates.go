package roster

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dmyPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// FormatDMY renders a stored date of birth for display as DD/MM/YYYY.
// It accepts canonical ISO dates (YYYY-MM-DD, an optional time suffix after
// 'T' is ignored) as well as legacy values already in DD/MM/YYYY form, which
// pass through unchanged. Anything else is returned as-is, best effort; the
// formatter never fails.
func FormatDMY(s string) string {
	if s == "" {
		return ""
	}
	if dmyPattern.MatchString(s) {
		return s
	}
	base, _, _ := strings.Cut(s, "T")
	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return s
	}
	return pad2(parts[2]) + "/" + pad2(parts[1]) + "/" + parts[0]
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// MaskDMY turns a raw keystroke buffer into a live DD/MM/YYYY mask: strips all
// non-digits, caps at 8 digits, and re-inserts the slashes after positions 2
// and 4. It performs no calendar validation; use ValidDMY for that.
func MaskDMY(raw string) string {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(raw) && len(digits) < 8; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	var b strings.Builder
	for i, d := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(d)
	}
	return b.String()
}

// ValidDMY reports whether s is an exact DD/MM/YYYY date that also names a
// real calendar day. The round-trip through time.Date catches overflows such
// as 31/04 or 29/02 in a non-leap year, which normalize to a different day.
func ValidDMY(s string) bool {
	if !dmyPattern.MatchString(s) {
		return false
	}
	d, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[3:5])
	y, _ := strconv.Atoi(s[6:10])

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}
