package views

import (
	"fmt"

	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/ui"
	"github.com/hance08/concil/internal/utils"
	"github.com/pterm/pterm"
)

const runTimeFormat = "2006-01-02 15:04:05"

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func RenderRunSummary(run model.Run) error {
	pterm.Println()
	ui.PrintL1Title("Reconciliation %s", shortID(run.ID))

	output := run.OutputPath
	if output == "" {
		output = pterm.Yellow("(not written)")
	}

	tableData := pterm.TableData{
		{"Input", run.InputPath},
		{"Output", output},
		{"Gateway", run.Gateway},
		{"Sales Read", fmt.Sprint(run.Read)},
		{"Processed", pterm.Green(fmt.Sprint(run.Processed))},
		{"Skipped", skippedText(run.Skipped)},
		{"Total Gross", utils.FormatBRL(run.TotalGross)},
		{"Total Net", utils.FormatBRL(run.TotalNet)},
		{"Total Profit", profitText(run)},
		{"Duration", run.FinishedAt.Sub(run.StartedAt).String()},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderSkipped lists the sales left out of a run.
func RenderSkipped(skipped []service.SkippedSale) error {
	if len(skipped) == 0 {
		return nil
	}

	pterm.Println()
	ui.PrintL2Title("Skipped Sales")
	tableData := pterm.TableData{{"Sale", "Reason"}}
	for _, s := range skipped {
		tableData = append(tableData, []string{s.SaleID, s.Reason})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

func RenderRunList(runs []*model.Run, limit int) error {
	if len(runs) == 0 {
		pterm.Warning.Println("No runs recorded yet")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent runs (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Started", "Gateway", "Read", "Processed", "Skipped", "Net", "Profit"},
	}
	for _, run := range runs {
		tableData = append(tableData, []string{
			shortID(run.ID),
			run.StartedAt.Format(runTimeFormat),
			run.Gateway,
			fmt.Sprint(run.Read),
			fmt.Sprint(run.Processed),
			skippedText(run.Skipped),
			utils.FormatBRL(run.TotalNet),
			profitText(*run),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d runs\n", len(runs))
	return nil
}

func RenderRunDetail(run *model.Run, items []model.ReportRow) error {
	if err := RenderRunSummary(*run); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Reconciled Sales")
	if len(items) == 0 {
		pterm.Warning.Println("No sale was reconciled in this run")
		return nil
	}

	tableData := pterm.TableData{
		{"Sale", "Customer", "Method", "Gross", "Gateway Fee", "Extra Fee", "Net", "Profit", "ROI", "Status"},
	}
	for _, item := range items {
		tableData = append(tableData, []string{
			item.SaleID,
			item.Customer,
			item.PaymentMethod,
			utils.FormatBRL(item.GrossAmount),
			utils.FormatBRL(item.GatewayFee),
			utils.FormatBRL(item.AdditionalFee),
			utils.FormatBRL(item.NetAmount),
			utils.FormatBRL(item.Profit),
			utils.FormatAmount(item.ROI) + "%",
			ui.StatusColor(item.Status),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

func RenderRunDeletePreview(run *model.Run) {
	pterm.Warning.Printf("About to delete run %s:\n", shortID(run.ID))

	deletionInfo := pterm.TableData{
		{"Started", run.StartedAt.Format(runTimeFormat)},
		{"Input", run.InputPath},
		{"Processed", fmt.Sprint(run.Processed)},
	}

	_ = pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderRunDeleteSuccess(id string) {
	pterm.Success.Printf("Run %s deleted successfully\n", shortID(id))
	ui.Separator()
}

func skippedText(n int) string {
	if n == 0 {
		return "0"
	}
	return pterm.Yellow(fmt.Sprint(n))
}

func profitText(run model.Run) string {
	text := utils.FormatBRL(run.TotalProfit)
	if run.TotalProfit.IsNegative() {
		return pterm.Red(text)
	}
	return pterm.Green(text)
}
