package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/concil/internal/app"
	"github.com/hance08/concil/internal/errhandler"
	"github.com/hance08/concil/internal/gateway"
	"github.com/hance08/concil/internal/lookup"
	"github.com/hance08/concil/internal/ui"
	"github.com/hance08/concil/internal/ui/prompts"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type lookupRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewLookupCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [transaction-id]",
		Short: "Look up a gateway transaction by ID",
		Long: `Look up a gateway transaction by ID.

	With an ID the search runs once. Without one an interactive prompt opens:
	press Enter to search, leave the field empty to skip, Ctrl+C to quit.

	Examples:
	concil lookup TX-001
	concil lookup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &lookupRunner{
				app: application,
				cmd: cmd,
			}
			application.Lookup.OnChange(runner.showSearching)
			if len(args) == 1 {
				return runner.searchOnce(args[0])
			}
			return runner.interactive()
		},
	}
}

func (r *lookupRunner) searchOnce(raw string) error {
	if !r.app.Lookup.Search(raw) {
		return fmt.Errorf("transaction ID can not be empty")
	}
	return r.render(raw)
}

func (r *lookupRunner) interactive() error {
	ui.PrintL1Title("Transaction Lookup")

	for {
		raw, err := prompts.PromptTransactionID(r.app.Transactions.IDs())
		if err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Info.Println("Lookup closed")
				return nil
			}
			return err
		}

		if !r.app.Lookup.Search(raw) {
			continue
		}
		if err := r.render(raw); err != nil {
			return err
		}
		ui.Separator()
	}
}

// showSearching prints the searching line whenever both panels hide.
func (r *lookupRunner) showSearching(snap lookup.Snapshot) {
	if snap.State == lookup.Idle {
		_ = views.RenderLookup(snap)
	}
}

// render waits for the delayed search of raw to settle and draws the outcome.
func (r *lookupRunner) render(raw string) error {
	timeout := time.Duration(r.app.Config.Gateway.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = gateway.DefaultPortalTimeout
	}
	ctx, cancel := context.WithTimeout(r.cmd.Context(), timeout)
	defer cancel()

	snap, err := r.app.Lookup.AwaitResolved(ctx, raw)
	if err != nil {
		return fmt.Errorf("lookup did not finish: %w", err)
	}
	return views.RenderLookup(snap)
}
