// Command gumictl is the offline companion of the collection client: it
// writes the import template, checks CSV files, renders spending reports and
// applies database migrations.
package main

import (
	"os"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gumictl",
		Short:   "Collection CSV and database tooling",
		Version: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newTemplateCmd(),
		newInspectCmd(),
		newReportCmd(),
		newMigrateCmd(),
	)
	return rootCmd
}
