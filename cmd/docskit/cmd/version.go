package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Version = Version
	RegisterCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the docskit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docskit version %s (built %s)\n", Version, BuildTime)
		},
	})
}
