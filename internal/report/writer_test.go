package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/concil/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func row(id, status, gross, net, profit string) model.ReportRow {
	return model.ReportRow{
		SaleID:        id,
		Customer:      "Cliente " + id,
		GrossAmount:   decimal.RequireFromString(gross),
		PaymentMethod: "pix",
		GatewayFee:    decimal.RequireFromString("1"),
		AdditionalFee: decimal.RequireFromString("0.5"),
		NetAmount:     decimal.RequireFromString(net),
		ProductCost:   decimal.RequireFromString("10"),
		Profit:        decimal.RequireFromString(profit),
		ROI:           decimal.RequireFromString("12.34"),
		Status:        status,
	}
}

func openReport(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = f.Close()
	})
	return f
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "nested", "report.xlsx")
	rows := []model.ReportRow{
		row("TX-001", "Aprovado", "100", "96.5", "46.5"),
		row("TX-002", "Pendente (Divergência)", "200.25", "190", "-10.75"),
	}

	require.NoError(t, WriteReport(rows, path))

	f := openReport(t, path)
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, Headers, got[0])
	assert.Equal(t, "TX-001", got[1][0])
	assert.Equal(t, "Aprovado", got[1][10])
	assert.Equal(t, "Pendente (Divergência)", got[2][10])

	total := got[3]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, "300.25", total[2])
	assert.Equal(t, "286.50", total[6])
	assert.Equal(t, "35.75", total[8])
}

func TestWriteReport_Styles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteReport([]model.ReportRow{row("TX-001", "Aprovado", "100", "96.5", "46.5")}, path))

	f := openReport(t, path)

	numFmt := func(cell string) string {
		id, err := f.GetCellStyle(SheetName, cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		if style.CustomNumFmt == nil {
			return ""
		}
		return *style.CustomNumFmt
	}
	fillColor := func(cell string) string {
		id, err := f.GetCellStyle(SheetName, cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		if len(style.Fill.Color) == 0 {
			return ""
		}
		return strings.ToUpper(style.Fill.Color[0])
	}

	assert.Equal(t, moneyFormat, numFmt("C2"))
	assert.Equal(t, moneyFormat, numFmt("I2"))
	assert.Equal(t, percentFormat, numFmt("J2"))
	assert.Contains(t, fillColor("A1"), colorHeader)
	assert.Contains(t, fillColor("K2"), colorApproved)
	assert.Contains(t, fillColor("A3"), colorTotal)
	assert.Contains(t, fillColor("K3"), colorTotal)

	width, err := f.GetColWidth(SheetName, "O")
	require.NoError(t, err)
	custom, err := f.GetColWidth(SheetName, "G")
	require.NoError(t, err)
	assert.Greater(t, custom, 0.0)
	assert.NotEqual(t, width, custom)
}

func TestWriteReport_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteReport(nil, path))

	f := openReport(t, path)
	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "TOTAL", got[1][0])
}

func TestSum(t *testing.T) {
	totals := Sum([]model.ReportRow{
		row("A", "Aprovado", "10.10", "9", "1"),
		row("B", "Aprovado", "0.20", "0.1", "-2"),
	})

	assert.True(t, decimal.RequireFromString("10.30").Equal(totals.Gross))
	assert.True(t, decimal.RequireFromString("9.1").Equal(totals.Net))
	assert.True(t, decimal.RequireFromString("-1").Equal(totals.Profit))
}
