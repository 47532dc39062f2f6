// Package audit keeps a local JSONL history of scans. Records carry counts,
// timing and a content fingerprint so a document can be recognized across
// runs, but never the matched text itself.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/vaulty/vaulty/internal/types"
)

const logFileName = "audit.jsonl"

// ScanRecord is one line of the audit log.
type ScanRecord struct {
	Timestamp   time.Time      `json:"timestamp"`
	ScanID      string         `json:"scan_id"`
	File        string         `json:"file"`
	Fingerprint string         `json:"fingerprint"`
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
	TopScore    int            `json:"top_score"`
	Duration    string         `json:"duration"`
}

// Log appends scan records to a JSONL file.
type Log struct {
	path string
}

// Open returns the audit log in the user's config directory. An explicit
// path overrides the default location.
func Open(path string) *Log {
	if path == "" {
		path = defaultPath()
	}
	return &Log{path: path}
}

func defaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home == "" {
			return logFileName
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "vaulty", logFileName)
}

// Append writes one record. The file is owner-only: scan history is itself
// sensitive metadata.
func (l *Log) Append(rec ScanRecord) error {
	if rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", time.Now().UnixNano())
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns all records, newest first. Malformed lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec ScanRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRecord builds an audit record from a finished scan. Only counts and the
// top score cross into the log; findings stay behind.
func NewRecord(file string, text string, findings []types.Finding, counts map[string]int, duration time.Duration) ScanRecord {
	top := 0
	for _, f := range findings {
		if f.RiskScore > top {
			top = f.RiskScore
		}
	}
	return ScanRecord{
		Timestamp:   time.Now(),
		File:        filepath.Base(file),
		Fingerprint: Fingerprint([]byte(text)),
		Counts:      counts,
		Total:       len(findings),
		TopScore:    top,
		Duration:    duration.String(),
	}
}

// Fingerprint returns a short stable content hash identifying a document
// without storing any of it.
func Fingerprint(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
