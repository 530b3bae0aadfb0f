package cmd

import (
	"github.com/hance08/concil/internal/rules"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees [method]",
		Short: "Show the additional fee of each payment method",
		Long: `Show the additional fee charged per payment method.

	Methods: cartao_credito, cartao_debito, pix, boleto`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := make([]string, 0, len(rules.Methods))
			if len(args) == 1 {
				methods = append(methods, args[0])
			} else {
				for _, m := range rules.Methods {
					methods = append(methods, string(m))
				}
			}

			fees := make([]rules.FeeDescription, 0, len(methods))
			for _, m := range methods {
				info, err := rules.FeeInfo(m)
				if err != nil {
					return err
				}
				fees = append(fees, info)
			}

			return views.RenderFeeTable(fees)
		},
	}
}
