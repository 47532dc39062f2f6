package registry

import (
	"regexp"

	"github.com/vaulty/vaulty/internal/validate"
)

// Built-in patterns. All are RE2, so matching is linear in the input length;
// the scanner runs over attacker-influenced file content and must never be
// handed a backtracking-prone construct.
var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reSSN   = regexp.MustCompile(`\b(?:\d{3}-\d{2}-\d{4}|\d{9})\b`)
	rePhone = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	// 13-19 digits with optional single space/dash separators, never trailing.
	reCard   = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)
	reAWSKey = regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)
	reAPIKey = regexp.MustCompile(`(?i)(?:api_key|apikey|secret|token)\s*[:=]\s*['"]([a-zA-Z0-9_\-]{20,})['"]`)
)

// Builtin returns the default registry. Registration order is part of the
// observable contract: it breaks ties between findings at the same offset.
func Builtin() *Registry {
	r := New()
	r.MustRegister(Detector{
		Name:       "email",
		Pattern:    reEmail,
		BaseWeight: 2,
	})
	r.MustRegister(Detector{
		Name:       "ssn",
		Pattern:    reSSN,
		Validator:  validate.SSN,
		BaseWeight: 7,
		OnInvalid:  DropInvalid,
	})
	r.MustRegister(Detector{
		Name:       "phone",
		Pattern:    rePhone,
		BaseWeight: 3,
	})
	r.MustRegister(Detector{
		Name:       "credit_card",
		Pattern:    reCard,
		Validator:  validate.Luhn,
		BaseWeight: 8,
		OnInvalid:  DropInvalid,
	})
	r.MustRegister(Detector{
		Name:       "aws_key",
		Pattern:    reAWSKey,
		BaseWeight: 10,
	})
	r.MustRegister(Detector{
		Name:          "api_key",
		Pattern:       reAPIKey,
		BaseWeight:    9,
		SubmatchGroup: 1,
	})
	return r
}
