package types

// Severity is a coarse-grained risk level derived from a finding's score.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// SeverityFor maps a risk score in [0,10] onto a display severity.
func SeverityFor(score int) Severity {
	switch {
	case score >= 7:
		return SevHigh
	case score >= 4:
		return SevMed
	default:
		return SevLow
	}
}

// Candidate is a raw, unvalidated match emitted by the scanner. Start and End
// are 0-based byte offsets into the scanned text, Start < End.
type Candidate struct {
	Detector string
	Match    string
	Start    int
	End      int
}

// Verdict is a validator's judgement of a candidate. Candidates from
// detectors without a validator are always valid.
type Verdict struct {
	Valid  bool
	Reason string
}

// Finding is the canonical output unit: a validated, scored match. It is
// never mutated after the assembler creates it. The json tags are the stable
// wire contract for the export projection; auditors depend on these names.
type Finding struct {
	Detector  string `json:"detector"`
	Match     string `json:"match"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	RiskScore int    `json:"risk_score"`
	Why       string `json:"why"`
}
