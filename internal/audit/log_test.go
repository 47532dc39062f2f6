package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vaulty/vaulty/internal/types"
)

func TestAppendAndHistoryRoundtrip(t *testing.T) {
	log := Open(filepath.Join(t.TempDir(), "audit.jsonl"))

	first := ScanRecord{ScanID: "scan_1", File: "a.txt", Total: 2, TopScore: 7}
	second := ScanRecord{ScanID: "scan_2", File: "b.csv", Total: 0}
	if err := log.Append(first); err != nil {
		t.Fatal(err)
	}
	if err := log.Append(second); err != nil {
		t.Fatal(err)
	}

	recs, err := log.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	// Newest first.
	if recs[0].ScanID != "scan_2" || recs[1].ScanID != "scan_1" {
		t.Fatalf("order = %s, %s", recs[0].ScanID, recs[1].ScanID)
	}
	if recs[1].TopScore != 7 {
		t.Fatalf("top_score = %d", recs[1].TopScore)
	}
}

func TestAppendAssignsScanID(t *testing.T) {
	log := Open(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err := log.Append(ScanRecord{File: "a.txt"}); err != nil {
		t.Fatal(err)
	}
	recs, err := log.History()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(recs[0].ScanID, "scan_") {
		t.Fatalf("scan_id = %q", recs[0].ScanID)
	}
}

func TestLogFileIsOwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	log := Open(path)
	if err := log.Append(ScanRecord{File: "a.txt"}); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("perm = %o", st.Mode().Perm())
	}
}

func TestNewRecordNeverStoresMatches(t *testing.T) {
	text := "ssn 123-45-6789 mail secret.addr@example.com"
	findings := []types.Finding{
		{Detector: "ssn", Match: "123-45-6789", RiskScore: 7},
		{Detector: "email", Match: "secret.addr@example.com", RiskScore: 2},
	}
	counts := map[string]int{"ssn": 1, "email": 1}

	rec := NewRecord("/tmp/doc.txt", text, findings, counts, 40*time.Millisecond)
	if rec.File != "doc.txt" {
		t.Fatalf("file = %q", rec.File)
	}
	if rec.Total != 2 || rec.TopScore != 7 {
		t.Fatalf("total=%d top=%d", rec.Total, rec.TopScore)
	}

	log := Open(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err := log.Append(rec); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(log.path)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range findings {
		if strings.Contains(string(raw), f.Match) {
			t.Fatalf("audit log leaked %q", f.Match)
		}
	}
}

func TestHistoryMissingFile(t *testing.T) {
	log := Open(filepath.Join(t.TempDir(), "audit.jsonl"))
	if _, err := log.History(); err == nil {
		t.Fatal("expected error for missing log")
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("hello"))
	b := Fingerprint([]byte("hello"))
	c := Fingerprint([]byte("hello!"))
	if len(a) != 16 {
		t.Fatalf("len = %d", len(a))
	}
	if a != b {
		t.Fatal("fingerprint must be stable")
	}
	if a == c {
		t.Fatal("distinct content must fingerprint differently")
	}
	if Fingerprint(nil) != "0000000000000000" {
		t.Fatalf("empty = %q", Fingerprint(nil))
	}
}
