package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/olekukonko/tablewriter"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/types"
)

// PrintOptions tunes terminal rendering.
type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

// PrintSummary renders the Summary projection as a bordered table in
// registry order, followed by a footer with totals. This is the only
// projection the terminal shows by default.
func PrintSummary(w io.Writer, reg *registry.Registry, s Summary, opts PrintOptions) {
	if s.Total == 0 {
		fmt.Fprintln(w, "No sensitive data found ✅")
	}
	t := tablewriter.NewWriter(w)
	t.Header("CATEGORY", "COUNT", "SEVERITY")
	for _, d := range reg.All() {
		sev := string(types.SeverityFor(d.BaseWeight))
		if !opts.NoColor {
			sev = colorSeverity(types.SeverityFor(d.BaseWeight))
		}
		t.Append([]string{d.Name, strconv.Itoa(s.Counts[d.Name]), sev})
	}
	_ = t.Render()

	fmt.Fprintf(w, "Findings: %d\n", s.Total)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// SummaryText renders the Summary as plain lines, the shape the clipboard
// copy and quiet mode use.
func SummaryText(reg *registry.Registry, s Summary) string {
	var b strings.Builder
	b.WriteString("Findings Summary:\n")
	if s.Total == 0 {
		b.WriteString("- No issues detected")
		return b.String()
	}
	for _, name := range reg.Names() {
		if n := s.Counts[name]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", name, n)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// WriteExportJSON writes the Export projection as indented JSON.
func WriteExportJSON(w io.Writer, e Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteExportPretty writes the export with terminal syntax highlighting.
// Intended for explicit --json output on a TTY; falls back to plain JSON
// when highlighting fails.
func WriteExportPretty(w io.Writer, e Export) error {
	var buf bytes.Buffer
	if err := WriteExportJSON(&buf, e); err != nil {
		return err
	}
	lexer := lexers.Get("json")
	if lexer == nil {
		_, err := w.Write(buf.Bytes())
		return err
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	it, err := lexer.Tokenise(nil, buf.String())
	if err != nil {
		_, werr := w.Write(buf.Bytes())
		if werr != nil {
			return werr
		}
		return nil
	}
	return formatter.Format(w, style, it)
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "\x1b[31mhigh\x1b[0m"
	case types.SevMed:
		return "\x1b[33mmedium\x1b[0m"
	default:
		return "\x1b[36mlow\x1b[0m"
	}
}
