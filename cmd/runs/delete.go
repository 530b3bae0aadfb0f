package runs

import (
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/ui/prompts"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	runner := &deleteRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a run",
		Long:  `Delete a run and its reconciled sales. The report file is left untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Delete without asking")

	return cmd
}

func (r *deleteRunner) Run(id string) error {
	detail, err := r.svc.Runs.GetRun(id)
	if err != nil {
		return err
	}

	if !r.yes {
		views.RenderRunDeletePreview(detail.Run)

		confirm, err := prompts.PromptConfirm("Do you want to delete this run?", false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	deleted, err := r.svc.Runs.DeleteRun(detail.Run.ID)
	if err != nil {
		return err
	}

	views.RenderRunDeleteSuccess(deleted.ID)
	return nil
}
