// Package report writes the reconciliation workbook.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hance08/concil/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Relatório de Conciliação"

var Headers = []string{
	"ID Venda",
	"Cliente",
	"Valor Bruto",
	"Forma Pagamento",
	"Taxa Gateway",
	"Taxa Adicional",
	"Valor Líquido",
	"Custo",
	"Lucro",
	"ROI (%)",
	"Status",
}

const (
	colorHeader   = "4472C4"
	colorApproved = "C6EFCE"
	colorPending  = "FFEB9C"
	colorTotal    = "FFC000"

	moneyFormat   = `R$ #,##0.00`
	percentFormat = `0.00"%"`
)

// 1-based columns holding money and the ROI
var (
	moneyColumns = map[int]bool{3: true, 5: true, 6: true, 7: true, 8: true, 9: true}
	roiColumn    = 10
	statusColumn = 11
)

type styles struct {
	header, money, percent, approved, pending, total, totalMoney int
}

// Totals are the sums written on the TOTAL row.
type Totals struct {
	Gross  decimal.Decimal
	Net    decimal.Decimal
	Profit decimal.Decimal
}

func Sum(rows []model.ReportRow) Totals {
	var t Totals
	for _, r := range rows {
		t.Gross = t.Gross.Add(r.GrossAmount)
		t.Net = t.Net.Add(r.NetAmount)
		t.Profit = t.Profit.Add(r.Profit)
	}
	return t
}

// WriteReport saves rows as a styled workbook at path, creating parent
// directories as needed. An existing file is replaced.
func WriteReport(rows []model.ReportRow, path string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	w := &sheetWriter{f: f, widths: make([]int, len(Headers))}

	for i, h := range Headers {
		w.set(i+1, 1, h, st.header)
	}

	for i, r := range rows {
		line := i + 2
		values := []any{
			r.SaleID,
			r.Customer,
			r.GrossAmount,
			r.PaymentMethod,
			r.GatewayFee,
			r.AdditionalFee,
			r.NetAmount,
			r.ProductCost,
			r.Profit,
			r.ROI,
			r.Status,
		}
		for c, v := range values {
			col := c + 1
			style := 0
			switch {
			case moneyColumns[col]:
				style = st.money
			case col == roiColumn:
				style = st.percent
			case col == statusColumn:
				style = statusStyle(r.Status, st)
			}
			w.set(col, line, v, style)
		}
	}

	totals := Sum(rows)
	line := len(rows) + 2
	for col := 1; col <= len(Headers); col++ {
		var v any
		style := st.total
		switch col {
		case 1:
			v = "TOTAL"
		case 3:
			v, style = totals.Gross, st.totalMoney
		case 7:
			v, style = totals.Net, st.totalMoney
		case 9:
			v, style = totals.Profit, st.totalMoney
		}
		w.set(col, line, v, style)
	}

	if w.err != nil {
		return w.err
	}

	for i, width := range w.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width+2)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("can not create report directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

func statusStyle(status string, st styles) int {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "aprovado"):
		return st.approved
	case strings.Contains(lower, "pendente"):
		return st.pending
	default:
		return 0
	}
}

// sheetWriter keeps the first error and the widest text per column.
type sheetWriter struct {
	f      *excelize.File
	widths []int
	err    error
}

func (w *sheetWriter) set(col, row int, value any, style int) {
	if w.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}

	text := ""
	switch v := value.(type) {
	case nil:
	case decimal.Decimal:
		text = v.StringFixed(2)
		err = w.f.SetCellFloat(SheetName, cell, v.InexactFloat64(), 2, 64)
	case string:
		text = v
		err = w.f.SetCellStr(SheetName, cell, v)
	default:
		text = fmt.Sprint(v)
		err = w.f.SetCellValue(SheetName, cell, v)
	}
	if err == nil && style != 0 {
		err = w.f.SetCellStyle(SheetName, cell, cell, style)
	}
	if err != nil {
		w.err = fmt.Errorf("failed to write cell %s: %w", cell, err)
		return
	}

	if n := utf8.RuneCountInString(text); n > w.widths[col-1] {
		w.widths[col-1] = n
	}
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}
	money := moneyFormat
	percent := percentFormat

	var st styles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      fill(colorHeader),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		}},
		{&st.money, &excelize.Style{CustomNumFmt: &money}},
		{&st.percent, &excelize.Style{CustomNumFmt: &percent}},
		{&st.approved, &excelize.Style{Fill: fill(colorApproved)}},
		{&st.pending, &excelize.Style{Fill: fill(colorPending)}},
		{&st.total, &excelize.Style{Font: &excelize.Font{Bold: true}, Fill: fill(colorTotal)}},
		{&st.totalMoney, &excelize.Style{Font: &excelize.Font{Bold: true}, Fill: fill(colorTotal), CustomNumFmt: &money}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, fmt.Errorf("failed to create report style: %w", err)
		}
		*d.dst = id
	}
	return st, nil
}
