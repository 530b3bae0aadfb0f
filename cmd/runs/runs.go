package runs

import (
	"github.com/hance08/concil/internal/service"
	"github.com/spf13/cobra"
)

func NewRunsCmd(svc *service.Service) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse the history of reconciliation runs",
		Long:  `List, inspect and delete past reconciliation runs.`,
	}

	runsCmd.AddCommand(NewListCmd(svc))
	runsCmd.AddCommand(NewShowCmd(svc))
	runsCmd.AddCommand(NewDeleteCmd(svc))

	return runsCmd
}
