package vaulty

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaulty/vaulty/internal/audit"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scans from the local audit log",
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := audit.Open("").History()
			if err != nil {
				fmt.Fprintln(os.Stderr, "no scan history yet")
				return nil
			}
			if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
				records = records[:flagHistoryLimit]
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			for _, r := range records {
				fmt.Printf("%s  %-20s findings=%-3d top=%-2d %s\n",
					r.Timestamp.Format("2006-01-02 15:04"), r.File, r.Total, r.TopScore, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "show at most this many records")
	rootCmd.AddCommand(cmd)
}
