package vaulty

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaulty/vaulty/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update vaulty to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			latest, newer, err := update.Check(version, false)
			if err != nil {
				return err
			}
			if !newer {
				fmt.Fprintln(os.Stderr, "already up to date")
				return nil
			}
			fmt.Fprintf(os.Stderr, "updating to v%s...\n", latest)
			return selfUpdate()
		},
	}
	rootCmd.AddCommand(cmd)
}
