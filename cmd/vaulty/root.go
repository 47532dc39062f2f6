package vaulty

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagVerbose       bool
	flagQuiet         bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the vaulty CLI.
var rootCmd = &cobra.Command{
	Use:           "vaulty",
	Short:         "Scan a local document for sensitive data",
	Long:          "Vaulty scans a TXT, CSV or PDF document for sensitive-data patterns and reports validated, risk-scored findings. The terminal shows category counts only; raw matches go to the structured export.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		if flagQuiet {
			level = zerolog.ErrorLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: flagNoColor}).
			Level(level).With().Timestamp().Logger()
	},
}

// Execute runs the vaulty CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the full JSON export instead of the summary")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "errors only")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
