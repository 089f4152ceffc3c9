package totpgate

import (
	"strings"
	"unicode"
)

// acceptablePassword enforces the registration policy: minimum length plus
// at least one uppercase letter, one lowercase letter, one digit, and one
// rune from the configured symbol set.
func acceptablePassword(policy PolicyConfig, candidate string) bool {
	if len(candidate) < policy.MinLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(policy.Symbols, r) {
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
