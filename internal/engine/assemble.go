package engine

import (
	"sort"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/score"
	"github.com/vaulty/vaulty/internal/types"
)

// Assemble merges candidates and validator verdicts into the canonical
// finding list. Acceptance policy per category:
//
//   - no validator: every candidate becomes a finding;
//   - validator present: the candidate survives only if the verdict is valid,
//     unless the detector opted into KeepHalved.
//
// The result is ordered by start offset ascending; ties keep the registration
// order of their detector. Tests rely on this ordering.
func Assemble(reg *registry.Registry, candidates []types.Candidate) []types.Finding {
	out := make([]types.Finding, 0, len(candidates))
	for _, c := range candidates {
		d, _, ok := reg.Lookup(c.Detector)
		if !ok {
			continue
		}
		verdict := types.Verdict{Valid: true, Reason: "no validator configured"}
		if d.Validator != nil {
			verdict = d.Validator(c.Match)
			if !verdict.Valid && d.OnInvalid == registry.DropInvalid {
				continue
			}
		}
		risk, why := score.Score(d, c.Match, verdict)
		out = append(out, types.Finding{
			Detector:  c.Detector,
			Match:     c.Match,
			Start:     c.Start,
			End:       c.End,
			RiskScore: risk,
			Why:       why,
		})
	}
	// Candidates arrive grouped by registration order, so a stable sort on
	// the start offset alone yields the documented tie-break.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
