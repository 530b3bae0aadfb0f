package runs

import (
	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc   *service.Service
	limit int
}

func NewListCmd(svc *service.Service) *cobra.Command {
	runner := &ListCommandRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&runner.limit, "limit", "n", constants.DefaultRunListLimit, "Number of runs to show")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	runs, err := r.svc.Runs.ListRuns(r.limit)
	if err != nil {
		return err
	}
	return views.RenderRunList(runs, r.limit)
}
