package views

import (
	"github.com/hance08/concil/internal/lookup"
	"github.com/hance08/concil/internal/ui"
	"github.com/pterm/pterm"
)

// RenderLookup draws whichever panel the snapshot shows.
func RenderLookup(snap lookup.Snapshot) error {
	switch snap.State {
	case lookup.ResultShown:
		return renderResultPanel(snap.Fields)
	case lookup.ErrorShown:
		pterm.Error.Println("Transaction not found. Check the ID and try again.")
		return nil
	default:
		pterm.Info.Printf("Searching %s...\n", snap.Query)
		return nil
	}
}

func renderResultPanel(f lookup.Fields) error {
	pterm.Println()
	ui.PrintL2Title("Transaction %s", f.ID)

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", f.ID},
		{"Customer", f.Customer},
		{"Sale Date", f.SaleDate},
		{"Payment Date", f.PaymentDate},
		{"Payment Method", f.Method},
		{"Gross Amount", f.GrossAmount},
		{"Gateway Fee", f.GatewayFee},
		{"Status", ui.StatusColor(f.Status)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}
