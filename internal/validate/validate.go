package validate

import (
	"strings"

	"github.com/vaulty/vaulty/internal/types"
)

// DigitsOnly returns s with everything except ASCII digits removed.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// stripSeparators removes the separators a card number may legally carry.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// Luhn validates a payment-card candidate. Separators are stripped first; the
// residue must be 13-19 digits and satisfy the mod-10 checksum. Candidates of
// all-identical digits are not special-cased: they pass or fail purely on the
// checksum, which keeps the predicate deterministic.
func Luhn(candidate string) types.Verdict {
	s := stripSeparators(candidate)
	if n := len(s); n < 13 || n > 19 {
		return types.Verdict{Valid: false, Reason: "length outside 13-19 digits"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return types.Verdict{Valid: false, Reason: "non-digit after separator strip"}
		}
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return types.Verdict{Valid: false, Reason: "luhn checksum failed"}
	}
	return types.Verdict{Valid: true, Reason: "luhn checksum passed"}
}

// LuhnValid is the boolean form of Luhn for callers that only need a predicate.
func LuhnValid(candidate string) bool {
	return Luhn(candidate).Valid
}

// SSN validates a US Social Security Number candidate against the reserved
// ranges: area 000, 666, and 900-999 are never issued, group 00 and serial
// 0000 are invalid.
func SSN(candidate string) types.Verdict {
	s := DigitsOnly(candidate)
	if len(s) != 9 {
		return types.Verdict{Valid: false, Reason: "not 9 digits"}
	}
	area, group, serial := s[:3], s[3:5], s[5:]
	if area == "000" || area == "666" || area[0] == '9' {
		return types.Verdict{Valid: false, Reason: "reserved area number"}
	}
	if group == "00" {
		return types.Verdict{Valid: false, Reason: "zero group number"}
	}
	if serial == "0000" {
		return types.Verdict{Valid: false, Reason: "zero serial number"}
	}
	return types.Verdict{Valid: true, Reason: "ssn structure plausible"}
}
