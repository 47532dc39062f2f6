// Package score converts a validated candidate into a deterministic risk
// score and a short rationale. Scoring depends only on the detector, the
// candidate text, and the verdict; no clock, no randomness, no hidden state,
// so identical findings always score identically across runs.
package score

import (
	"fmt"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/types"
)

// MaxScore bounds the risk scale. Base weights live in [0, MaxScore].
const MaxScore = 10

// Score returns the risk score and rationale for a candidate of detector d.
// The rationale names the category and the validation outcome; it never
// embeds the matched text, so summaries built from it cannot leak PII.
func Score(d registry.Detector, _ string, verdict types.Verdict) (int, string) {
	base := d.BaseWeight
	if base > MaxScore {
		base = MaxScore
	}
	if base < 0 {
		base = 0
	}
	if d.Validator == nil {
		return base, fmt.Sprintf("%s: pattern match; no validator configured", d.Name)
	}
	if verdict.Valid {
		return base, fmt.Sprintf("%s: pattern match confirmed by validator", d.Name)
	}
	switch d.OnInvalid {
	case registry.KeepHalved:
		return base / 2, fmt.Sprintf("%s: pattern match failed validation; confidence reduced", d.Name)
	default:
		return 0, fmt.Sprintf("%s: pattern match failed validation", d.Name)
	}
}
