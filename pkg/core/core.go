package core

import (
	"github.com/vaulty/vaulty/internal/engine"
	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/report"
	"github.com/vaulty/vaulty/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config  = engine.Config
	Result  = engine.Result
	Finding = types.Finding
	Summary = report.Summary
	Export  = report.Export
)

// ScanText is the stable entrypoint for other programs holding extracted text.
func ScanText(text string, cfg Config) (Result, error) {
	return engine.ScanText(text, cfg)
}

// ScanFile extracts a supported document and scans it.
func ScanFile(path string, cfg Config) (Result, error) {
	return engine.ScanFile(path, cfg)
}

// Summarize derives the privacy-safe projection from a result using the
// built-in registry.
func Summarize(res Result) Summary {
	return report.Summarize(registry.Builtin(), res.Findings)
}

// DetectorIDs returns the built-in detector IDs in registration order.
// Exposed for convenience to avoid importing internals directly.
func DetectorIDs() []string { return engine.DetectorIDs() }
