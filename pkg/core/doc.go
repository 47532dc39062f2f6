// Package core provides a small, stable facade over vaulty's internal
// pipeline for external integrations. It deliberately re-exports a narrow API
// surface so callers can depend on a stable import path without reaching into
// internal implementation packages.
//
// Example:
//
//	res, err := core.ScanFile("statement.csv", core.Config{})
//	if err != nil { /* handle */ }
//	_ = core.MarshalExport(os.Stdout, report.BuildExport(res.Findings, time.Now()))
package core
