// Package token normalizes free-form answers typed at a prompt.
package token

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// quitWords are the answers that abort a session.
var quitWords = map[string]bool{"q": true, "quit": true, "exit": true}

// Normalize converts s into a canonical comparable form.
// It NFKC-normalizes (so full-width digits become ASCII), case-folds,
// strips surrounding whitespace and drops interior whitespace.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsQuit reports whether s asks to abort.
func IsQuit(s string) bool {
	return quitWords[Normalize(s)]
}

// ParseInt parses s as a decimal integer within [lo, hi]. The second
// result is false for non-numeric input, the third for numbers out of range.
func ParseInt(s string, lo, hi int) (n int, numeric bool, inRange bool) {
	n, err := strconv.Atoi(Normalize(s))
	if err != nil {
		return 0, false, false
	}
	return n, true, n >= lo && n <= hi
}

// Digits extracts die faces from a compact roll string such as "3 5 1,6".
// Whitespace and commas separate nothing and are skipped; any other
// non-digit is reported through ok.
func Digits(s string) (digits []int, ok bool) {
	for _, r := range norm.NFKC.String(s) {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case unicode.IsSpace(r) || r == ',':
		default:
			return nil, false
		}
	}
	return digits, true
}
