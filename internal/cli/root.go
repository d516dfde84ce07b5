// Package cli wires the cobra command tree for the scaffold binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildforge/scaffold/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate CRUD project skeletons from issue metadata",
	Long: `scaffold turns issue-tracker metadata into a runnable project skeleton.

It reads the issue body from a JSON or YAML metadata file, extracts the
requested framework, database, features, and entities, and writes a
framework-specific CRUD starter project under the output directory.
Without a metadata file it falls back to an interactive wizard.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("scaffold %s\n", version.GetVersion()))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
