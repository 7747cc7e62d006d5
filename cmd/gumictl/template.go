package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the empty import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), csvcodec.Template())
				return err
			}
			if err := os.WriteFile(output, []byte(csvcodec.Template()), 0o644); err != nil {
				return fmt.Errorf("write template: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", csvcodec.TemplateFileName, `file to write, "-" for stdout`)
	return cmd
}
