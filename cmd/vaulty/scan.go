package vaulty

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaulty/vaulty/internal/audit"
	"github.com/vaulty/vaulty/internal/config"
	"github.com/vaulty/vaulty/internal/engine"
	"github.com/vaulty/vaulty/internal/extract"
	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/report"
	"github.com/vaulty/vaulty/internal/tui"
	"github.com/vaulty/vaulty/internal/update"
)

var (
	flagOut      string
	flagMinScore int
	flagEnable   string
	flagDisable  string
	flagExclude  string
	flagMaxBytes int64
	flagBudget   time.Duration
	flagNoAudit  bool
	flagCopy     bool
	flagTUI      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan FILE...",
		Short: "Scan documents for sensitive data",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the JSON export to this file")
	cmd.Flags().IntVar(&flagMinScore, "min-score", 0, "only report findings with risk score >= value (0-10)")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these detectors (comma-separated names)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these detectors (comma-separated names)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated globs; named files matching any are skipped")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", extract.DefaultMaxBytes, "reject files larger than this")
	cmd.Flags().DurationVar(&flagBudget, "budget", 0, "abort a scan exceeding this wall-clock budget (0=off)")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not append to the local audit log")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the summary text to the clipboard")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "open the interactive summary viewer")
}

func runScan(_ *cobra.Command, args []string) error {
	cwd, _ := os.Getwd()
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(cwd); err == nil {
		lcfg = c
	}

	budget := flagBudget
	if budget == 0 {
		if s := pickString("", lcfg.Budget, gcfg.Budget); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				budget = d
			}
		}
	}

	reg := registry.Builtin()
	cfg := engine.Config{
		Registry:         reg,
		Budget:           budget,
		MinScore:         pickInt(flagMinScore, lcfg.MinScore, gcfg.MinScore),
		EnableDetectors:  pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		DisableDetectors: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		MaxBytes:         pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !term.IsTerminal(int(os.Stdout.Fd()))

	if !flagJSON && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'vaulty update' to upgrade\n", latest)
		}
	}

	files, err := selectFiles(args, pickString(flagExclude, lcfg.Exclude, gcfg.Exclude))
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := scanOne(file, reg, cfg, lcfg, gcfg, noColor); err != nil {
			return err
		}
	}
	return nil
}

func scanOne(file string, reg *registry.Registry, cfg engine.Config, lcfg, gcfg config.FileConfig, noColor bool) error {
	text, err := extract.ForPath(file, extract.Options{MaxBytes: cfg.MaxBytes})
	if err != nil {
		return fmt.Errorf("extract %s: %w", filepath.Base(file), err)
	}
	log.Debug().Str("file", filepath.Base(file)).Int("bytes", len(text)).Msg("text extracted")

	res, err := engine.ScanText(text, cfg)
	if err != nil {
		return fmt.Errorf("scan %s: %w", filepath.Base(file), err)
	}
	summary := report.Summarize(reg, res.Findings)
	log.Debug().Int("findings", summary.Total).Dur("duration", res.Duration).Msg("scan finished")

	if !flagNoAudit && pickBoolDefault(lcfg.Audit, gcfg.Audit, true) {
		rec := audit.NewRecord(file, text, res.Findings, summary.Counts, res.Duration)
		if err := audit.Open("").Append(rec); err != nil {
			log.Warn().Err(err).Msg("audit log write failed")
		}
	}

	export := report.BuildExport(res.Findings, time.Now())
	if flagOut != "" {
		if err := writeExportFile(flagOut, file, export, lcfg, gcfg); err != nil {
			return err
		}
	}

	switch {
	case flagJSON:
		// Full projection is explicit opt-in; raw matches never reach the
		// terminal otherwise.
		if !noColor {
			return report.WriteExportPretty(os.Stdout, export)
		}
		return report.WriteExportJSON(os.Stdout, export)
	case flagTUI:
		rescan := func() (report.Summary, error) {
			r, err := engine.ScanFile(file, cfg)
			if err != nil {
				return report.Summary{}, err
			}
			return report.Summarize(reg, r.Findings), nil
		}
		return tui.Run(reg, summary, filepath.Base(file), rescan)
	default:
		fmt.Printf("%s\n", filepath.Base(file))
		report.PrintSummary(os.Stdout, reg, summary, report.PrintOptions{NoColor: noColor, Duration: res.Duration})
	}

	if flagCopy {
		if err := clipboard.WriteAll(report.SummaryText(reg, summary)); err != nil {
			log.Warn().Err(err).Msg("clipboard copy failed")
		}
	}
	return nil
}

// selectFiles applies the exclude globs to the explicitly named files.
func selectFiles(args []string, exclude string) ([]string, error) {
	globs := splitList(exclude)
	var out []string
	for _, a := range args {
		if matchAnyGlob(filepath.ToSlash(a), globs) {
			log.Debug().Str("file", a).Msg("excluded by glob")
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("all named files were excluded")
	}
	return out, nil
}

func matchAnyGlob(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

func writeExportFile(out, scanned string, e report.Export, lcfg, gcfg config.FileConfig) error {
	if dir := pickString("", lcfg.ReportDir, gcfg.ReportDir); dir != "" && !filepath.IsAbs(out) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
		out = filepath.Join(dir, extract.SafeFilename(filepath.Base(out)))
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()
	if err := report.WriteExportJSON(f, e); err != nil {
		return fmt.Errorf("write export for %s: %w", filepath.Base(scanned), err)
	}
	return nil
}
