package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestForPathTxtVerbatim(t *testing.T) {
	content := "email a@b.com\nline two\n"
	path := writeFile(t, "notes.txt", content)
	got, err := ForPath(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatalf("text was altered: %q", got)
	}
}

func TestForPathCsvNotReparsed(t *testing.T) {
	// CSV is scanned as raw bytes; quoting and commas survive so offsets
	// match the file on disk.
	content := `name,ssn` + "\n" + `"Doe, Jane",123-45-6789` + "\n"
	path := writeFile(t, "people.csv", content)
	got, err := ForPath(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatalf("csv was altered: %q", got)
	}
}

func TestForPathUnsupported(t *testing.T) {
	path := writeFile(t, "image.png", "not really a png")
	_, err := ForPath(path, Options{})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v", err)
	}
}

func TestForPathTooLarge(t *testing.T) {
	path := writeFile(t, "big.txt", "0123456789")
	_, err := ForPath(path, Options{MaxBytes: 5})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v", err)
	}
}

func TestForPathMissingFile(t *testing.T) {
	_, err := ForPath(filepath.Join(t.TempDir(), "nope.txt"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestKind(t *testing.T) {
	cases := map[string]string{
		"a.txt":  "text",
		"A.TXT":  "text",
		"b.csv":  "csv",
		"c.pdf":  "pdf",
		"d.docx": "",
		"noext":  "",
	}
	for path, want := range cases {
		if got := kind(path); got != want {
			t.Errorf("kind(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"report.txt":       "report.txt",
		"my file (1).csv":  "my_file_1_.csv",
		"../../etc/passwd": ".._.._etc_passwd",
		"..":               "upload",
		"???":              "upload",
		"":                 "upload",
	}
	for in, want := range cases {
		if got := SafeFilename(in); got != want {
			t.Errorf("SafeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
