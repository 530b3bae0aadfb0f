package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hance08/concil/internal/app"
	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/ui/prompts"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type reconcileFlags struct {
	Input   string
	Output  string
	Gateway string
	Yes     bool
}

type reconcileRunner struct {
	app   *app.App
	flags *reconcileFlags
	cmd   *cobra.Command
}

func NewReconcileCmd(application *app.App) *cobra.Command {
	flags := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a sales spreadsheet against the gateway",
		Long: `Reconcile a sales spreadsheet against the payment gateway.

	Every sale is checked with the gateway for its fee and status, then net
	amount, profit and ROI are computed and written to an xlsx report. Sales
	the gateway does not know are skipped. Each run is kept in the history
	(see "concil runs").

	Examples:
	concil reconcile
	concil reconcile -i data/vendas.xlsx -o output/report.xlsx --gateway portal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reconcileRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cfg := application.Config
	cmd.Flags().StringVarP(&flags.Input, "input", "i", cfg.Defaults.Input, "Sales spreadsheet to read")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Report path (default: <output_dir>/Relatorio_Conciliacao_<timestamp>.xlsx)")
	cmd.Flags().StringVarP(&flags.Gateway, "gateway", "g", cfg.Gateway.Mode, "Gateway to query (mock, portal)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Overwrite an existing report without asking")

	return cmd
}

func (r *reconcileRunner) Run() error {
	output := r.flags.Output
	if output == "" {
		name := fmt.Sprintf("Relatorio_Conciliacao_%s.xlsx", time.Now().Format(constants.TimestampFormat))
		output = filepath.Join(r.app.Config.Defaults.OutputDir, name)
	}

	if _, err := os.Stat(output); err == nil && !r.flags.Yes {
		confirm, err := prompts.PromptConfirm(fmt.Sprintf("%s already exists. Overwrite it?", output), false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Reconciliation cancelled")
			return nil
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Reconciling %s via %s gateway", r.flags.Input, r.flags.Gateway))

	summary, err := r.app.Service.Reconcile.Run(r.cmd.Context(), service.RunInput{
		Input:   r.flags.Input,
		Output:  output,
		Gateway: r.flags.Gateway,
	})
	if err != nil && !errors.Is(err, service.ErrNothingProcessed) {
		if spinner != nil {
			spinner.Fail("Reconciliation failed")
		}
		return err
	}
	if spinner != nil {
		_ = spinner.Stop()
	}

	if err := views.RenderRunSummary(summary.Run); err != nil {
		return err
	}
	if err := views.RenderSkipped(summary.Skipped); err != nil {
		return err
	}

	if summary.Run.Processed == 0 {
		pterm.Warning.Println("No sale could be reconciled, report not written")
		return nil
	}

	pterm.Success.Printf("Report saved to %s\n", summary.Run.OutputPath)
	return nil
}
