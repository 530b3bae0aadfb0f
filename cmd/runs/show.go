package runs

import (
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run and its reconciled sales",
		Long:  `Show a run and its reconciled sales. The ID may be shortened to any unambiguous prefix.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := svc.Runs.GetRun(args[0])
			if err != nil {
				return err
			}
			return views.RenderRunDetail(detail.Run, detail.Items)
		},
	}
}
