package vaulty

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaulty/vaulty/internal/registry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(_ *cobra.Command, _ []string) {
			for _, d := range registry.Builtin().All() {
				validated := "-"
				if d.Validator != nil {
					validated = "validated"
				}
				fmt.Printf("%-14s weight=%-2d %s\n", d.Name, d.BaseWeight, validated)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
