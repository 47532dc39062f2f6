// Package report derives the two projections of a scan result. The Summary
// carries category counts only and is the sole projection any interactive
// surface may render; the Export carries raw matched text and offsets and is
// reserved for structured audit output.
package report

import (
	"time"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/types"
)

// Summary maps detector category to finding count. Every registered category
// is present, including zero counts; it never contains matched text or
// offsets.
type Summary struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// Export is the full structured projection. The finding field names are a
// stable wire contract; consumers depend on them not changing.
type Export struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Total       int             `json:"total"`
	Findings    []types.Finding `json:"findings"`
}

// Summarize builds the privacy-safe projection. The registry supplies the
// category universe so absent categories report zero rather than vanishing.
func Summarize(reg *registry.Registry, findings []types.Finding) Summary {
	counts := make(map[string]int, reg.Len())
	for _, name := range reg.Names() {
		counts[name] = 0
	}
	for _, f := range findings {
		counts[f.Detector]++
	}
	return Summary{Counts: counts, Total: len(findings)}
}

// BuildExport builds the full projection with a report-level timestamp.
func BuildExport(findings []types.Finding, now time.Time) Export {
	if findings == nil {
		findings = []types.Finding{}
	}
	return Export{
		GeneratedAt: now.UTC(),
		Total:       len(findings),
		Findings:    findings,
	}
}
