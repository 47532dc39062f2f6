// Package registry holds the detector definitions the rest of the pipeline
// runs against. A Registry is built once at startup and read-only afterwards;
// its registration order is the tie-break used for finding order everywhere
// downstream, so it must stay stable.
package registry

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vaulty/vaulty/internal/types"
)

// ErrDuplicateDetector is returned when a detector name is registered twice.
// This indicates a programming error, not bad input.
var ErrDuplicateDetector = errors.New("duplicate detector")

// InvalidPolicy decides what the assembler does with a candidate whose
// validator said no.
type InvalidPolicy int

const (
	// DropInvalid discards the candidate entirely; invalid candidates are
	// false-positive noise from the high-recall pattern stage.
	DropInvalid InvalidPolicy = iota
	// KeepHalved keeps the finding with its score halved.
	KeepHalved
)

// Validator is a pure predicate confirming a textual candidate is
// structurally plausible for its category. Same input, same output; no I/O.
type Validator func(candidate string) types.Verdict

// Detector is a single named rule: a matching pattern, an optional validator,
// and a base risk weight in [0,10]. Detectors are data, not behavior, and are
// immutable once registered.
type Detector struct {
	Name       string
	Pattern    *regexp.Regexp
	Validator  Validator // nil means candidates are always valid
	BaseWeight int
	OnInvalid  InvalidPolicy

	// SubmatchGroup selects a capture group to report as the matched text
	// while offsets still span the full match. 0 reports the full match.
	SubmatchGroup int
}

// Registry is an ordered, closed collection of detectors. No mutation happens
// after construction, so it needs no locking.
type Registry struct {
	detectors []Detector
	index     map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register appends a detector. The name must be unique.
func (r *Registry) Register(d Detector) error {
	if _, ok := r.index[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDetector, d.Name)
	}
	r.index[d.Name] = len(r.detectors)
	r.detectors = append(r.detectors, d)
	return nil
}

// MustRegister is Register for the built-in table, where a duplicate is a bug.
func (r *Registry) MustRegister(d Detector) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// All returns the detectors in registration order. Callers must not modify
// the returned slice.
func (r *Registry) All() []Detector {
	return r.detectors
}

// Lookup returns the detector with the given name and its registration index.
func (r *Registry) Lookup(name string) (Detector, int, bool) {
	i, ok := r.index[name]
	if !ok {
		return Detector{}, 0, false
	}
	return r.detectors[i], i, true
}

// Names returns detector names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		out[i] = d.Name
	}
	return out
}

// Len returns the number of registered detectors.
func (r *Registry) Len() int { return len(r.detectors) }
