// Package engine orchestrates one scan: scanner, validators, scorer and
// assembler wired together behind a single Config. A scan is synchronous and
// pure computation over an in-memory string; the registry is read-only after
// construction and everything else is call-local, so no locking is needed and
// independent scans can run in parallel freely.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/vaulty/vaulty/internal/extract"
	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/scanner"
	"github.com/vaulty/vaulty/internal/types"
)

// Config controls a scan. The zero value scans with the built-in registry,
// no budget and no filtering.
type Config struct {
	// Registry overrides the built-in detector set when non-nil.
	Registry *registry.Registry
	// Budget aborts the scan with a bounded-resource error when exceeded.
	// Zero disables the check.
	Budget time.Duration
	// MinScore drops findings scoring below it from the result.
	MinScore int
	// EnableDetectors / DisableDetectors are comma-separated detector names.
	EnableDetectors  string
	DisableDetectors string
	// MaxBytes caps file reads for ScanFile. Zero means the extract default.
	MaxBytes int64
}

// Result carries the findings of one scan plus basic statistics.
type Result struct {
	Findings  []types.Finding
	Duration  time.Duration
	TextBytes int
}

func (c Config) registry() *registry.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return registry.Builtin()
}

// DetectorIDs returns the built-in detector names in registration order.
func DetectorIDs() []string {
	return registry.Builtin().Names()
}

// ScanText runs the full pipeline over already-extracted text. Empty input
// yields an empty result, not an error.
func ScanText(text string, cfg Config) (Result, error) {
	var res Result
	reg := cfg.registry()
	started := time.Now()

	candidates, err := scanner.ScanWithBudget(reg, text, cfg.Budget)
	if err != nil {
		return res, fmt.Errorf("scan aborted: %w", err)
	}
	findings := Assemble(reg, candidates)
	findings = filterByScore(findings, cfg.MinScore)
	findings = filterByIDs(findings, cfg.EnableDetectors, cfg.DisableDetectors)

	res.Findings = findings
	res.Duration = time.Since(started)
	res.TextBytes = len(text)
	return res, nil
}

// ScanFile extracts text from a supported document and scans it. Extraction
// errors are surfaced unchanged; the pipeline itself never touches the file.
func ScanFile(path string, cfg Config) (Result, error) {
	text, err := extract.ForPath(path, extract.Options{MaxBytes: cfg.MaxBytes})
	if err != nil {
		return Result{}, err
	}
	return ScanText(text, cfg)
}

func filterByScore(fs []types.Finding, min int) []types.Finding {
	if min <= 0 {
		return fs
	}
	out := fs[:0]
	for _, f := range fs {
		if f.RiskScore >= min {
			out = append(out, f)
		}
	}
	return out
}

func filterByIDs(fs []types.Finding, enable, disable string) []types.Finding {
	if enable == "" && disable == "" {
		return fs
	}
	allowed := map[string]bool{}
	if enable != "" {
		for _, id := range strings.Split(enable, ",") {
			allowed[strings.TrimSpace(id)] = true
		}
	}
	blocked := map[string]bool{}
	if disable != "" {
		for _, id := range strings.Split(disable, ",") {
			blocked[strings.TrimSpace(id)] = true
		}
	}
	out := fs[:0]
	for _, f := range fs {
		if enable != "" && !allowed[f.Detector] {
			continue
		}
		if disable != "" && blocked[f.Detector] {
			continue
		}
		out = append(out, f)
	}
	return out
}
