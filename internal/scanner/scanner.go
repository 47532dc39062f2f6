// Package scanner turns raw text into candidate matches. It runs every
// detector in registry order over the full text; overlap suppression is local
// to each detector's own matching, so candidates from different detectors may
// overlap and each overlap stays a separate candidate.
package scanner

import (
	"errors"
	"time"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/types"
)

// ErrBudgetExceeded is returned when a scan outruns its configured wall-clock
// budget. The scan is aborted, not retried.
var ErrBudgetExceeded = errors.New("scan budget exceeded")

// Scan runs every registered detector over text and returns the raw
// candidates in detector-registration order, match order within a detector.
func Scan(reg *registry.Registry, text string) []types.Candidate {
	out, _ := ScanWithBudget(reg, text, 0)
	return out
}

// ScanWithBudget is Scan with a wall-clock budget. A budget of zero or less
// disables the check. The elapsed time is tested between detectors, so a
// single detector pass is the granularity of enforcement.
func ScanWithBudget(reg *registry.Registry, text string, budget time.Duration) ([]types.Candidate, error) {
	var out []types.Candidate
	started := time.Now()
	for _, d := range reg.All() {
		if budget > 0 && time.Since(started) > budget {
			return nil, ErrBudgetExceeded
		}
		out = append(out, run(d, text)...)
	}
	return out, nil
}

// run enumerates all matches for a single detector. It never short-circuits
// on the first hit.
func run(d registry.Detector, text string) []types.Candidate {
	idxs := d.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}
	out := make([]types.Candidate, 0, len(idxs))
	for _, m := range idxs {
		start, end := m[0], m[1]
		match := text[start:end]
		if g := d.SubmatchGroup; g > 0 && 2*g+1 < len(m) && m[2*g] >= 0 {
			// Report the captured value but keep the full-match offsets, the
			// way the export contract has always located context-gated hits.
			match = text[m[2*g]:m[2*g+1]]
		}
		out = append(out, types.Candidate{
			Detector: d.Name,
			Match:    match,
			Start:    start,
			End:      end,
		})
	}
	return out
}
