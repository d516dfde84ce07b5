package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildforge/scaffold/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, commit, and build date",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "scaffold "+version.GetFullVersion())
	},
}
