// Package sales reads the sales spreadsheet that feeds a reconciliation run.
package sales

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/rules"
	"github.com/hance08/concil/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var ErrSalesFile = errors.New("invalid sales file")

var dateLayouts = []string{
	constants.ISODateFormat,
	"2006-01-02 15:04:05",
	time.RFC3339,
	constants.DateFormat,
}

// ReadSales loads and validates every sale on the first sheet of an xlsx
// file. The first row must hold the column headers.
func ReadSales(path string) ([]model.Sale, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: file '%s' not found", ErrSalesFile, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrSalesFile, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: can not open '%s': %v", ErrSalesFile, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: '%s' has no sheets", ErrSalesFile, path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: can not read sheet '%s': %v", ErrSalesFile, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet '%s' is empty", ErrSalesFile, sheets[0])
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var sales []model.Sale
	seen := make(map[string]int)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		// header is row 1 and rows are 1-based in the sheet
		line := i + 2
		sale, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[sale.ID]; ok {
			return nil, fmt.Errorf("%w: row %d: sale id '%s' already used on row %d", ErrSalesFile, line, sale.ID, first)
		}
		seen[sale.ID] = line
		sales = append(sales, sale)
	}

	return sales, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	found := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		index[name] = i
		found = append(found, name)
	}

	var missing []string
	for _, col := range constants.RequiredSalesColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s (found: %s)",
			ErrSalesFile, strings.Join(missing, ", "), strings.Join(found, ", "))
	}

	return index, nil
}

func parseRow(row []string, index map[string]int, line int) (model.Sale, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for _, col := range constants.RequiredSalesColumns {
		if cell(col) == "" {
			return model.Sale{}, fmt.Errorf("%w: row %d: missing value in column '%s'", ErrSalesFile, line, col)
		}
	}

	gross, err := parseAmount(cell(constants.ColumnGrossAmount))
	if err != nil {
		return model.Sale{}, fmt.Errorf("%w: row %d: column '%s': %v", ErrSalesFile, line, constants.ColumnGrossAmount, err)
	}
	if !gross.IsPositive() {
		return model.Sale{}, fmt.Errorf("%w: row %d: gross amount must be greater than zero", ErrSalesFile, line)
	}

	cost, err := parseAmount(cell(constants.ColumnProductCost))
	if err != nil {
		return model.Sale{}, fmt.Errorf("%w: row %d: column '%s': %v", ErrSalesFile, line, constants.ColumnProductCost, err)
	}
	if cost.IsNegative() {
		return model.Sale{}, fmt.Errorf("%w: row %d: product cost can not be negative", ErrSalesFile, line)
	}

	date, err := parseDate(cell(constants.ColumnSaleDate))
	if err != nil {
		return model.Sale{}, fmt.Errorf("%w: row %d: column '%s': %v", ErrSalesFile, line, constants.ColumnSaleDate, err)
	}

	method, err := rules.ParsePaymentMethod(cell(constants.ColumnPaymentMethod))
	if err != nil {
		return model.Sale{}, fmt.Errorf("%w: row %d: %v", ErrSalesFile, line, err)
	}

	return model.Sale{
		ID:            cell(constants.ColumnSaleID),
		Customer:      cell(constants.ColumnCustomer),
		GrossAmount:   gross,
		SaleDate:      date,
		PaymentMethod: string(method),
		ProductCost:   cost,
	}, nil
}

// parseAmount accepts raw numbers ("150.5") and pt-BR money text ("R$ 150,50").
func parseAmount(raw string) (decimal.Decimal, error) {
	if amount, err := decimal.NewFromString(raw); err == nil {
		return amount, nil
	}
	return utils.ParseBRL(raw)
}

// parseDate accepts Excel date serials and text dates.
func parseDate(raw string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date '%s'", raw)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
