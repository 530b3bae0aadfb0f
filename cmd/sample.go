package cmd

import (
	"github.com/hance08/concil/internal/app"
	"github.com/hance08/concil/internal/sales"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewSampleCmd(application *app.App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a demo sales spreadsheet",
		Long: `Write a demo sales spreadsheet with ten sales.

	TX-001 to TX-005 exist on the portal, TX-006 to TX-010 do not, so a
	portal reconciliation of this file skips half of it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sales.WriteSampleSales(output); err != nil {
				return err
			}
			pterm.Success.Printf("Sample sales written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", application.Config.Defaults.Input, "Path of the spreadsheet to create")

	return cmd
}
