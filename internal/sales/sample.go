package sales

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Vendas"

// SampleSales is the demo data set. TX-001 to TX-005 exist on the portal,
// TX-006 to TX-010 do not.
func SampleSales() []model.Sale {
	day := func(d int) time.Time {
		return time.Date(2025, time.December, d, 0, 0, 0, 0, time.UTC)
	}
	sale := func(id, customer, gross string, date time.Time, method, cost string) model.Sale {
		return model.Sale{
			ID:            id,
			Customer:      customer,
			GrossAmount:   decimal.RequireFromString(gross),
			SaleDate:      date,
			PaymentMethod: method,
			ProductCost:   decimal.RequireFromString(cost),
		}
	}

	return []model.Sale{
		sale("TX-001", "João Silva", "150.00", day(1), "pix", "75.00"),
		sale("TX-002", "Maria Santos", "300.00", day(2), "cartao_credito", "180.00"),
		sale("TX-003", "Pedro Oliveira", "80.00", day(3), "cartao_debito", "40.00"),
		sale("TX-004", "Ana Costa", "500.00", day(3), "boleto", "300.00"),
		sale("TX-005", "Carlos Souza", "1200.00", day(4), "pix", "800.00"),
		sale("TX-006", "Fernanda Lima", "250.00", day(5), "cartao_credito", "120.00"),
		sale("TX-007", "Roberto Alves", "95.00", day(5), "pix", "50.00"),
		sale("TX-008", "Juliana Pereira", "420.00", day(6), "cartao_debito", "250.00"),
		sale("TX-009", "Marcos Vieira", "680.00", day(7), "boleto", "400.00"),
		sale("TX-010", "Patricia Rocha", "175.00", day(7), "pix", "90.00"),
	}
}

func WriteSampleSales(path string) error {
	return WriteSales(path, SampleSales())
}

// WriteSales stores sales in the layout ReadSales expects.
func WriteSales(path string, sales []model.Sale) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range constants.RequiredSalesColumns {
		if err := setCell(f, i+1, 1, header); err != nil {
			return err
		}
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}

	for i, s := range sales {
		row := i + 2
		values := []any{
			s.ID,
			s.Customer,
			s.GrossAmount.InexactFloat64(),
			s.SaleDate,
			s.PaymentMethod,
			s.ProductCost.InexactFloat64(),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}

		cell, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellStyle(sheetName, cell, cell, dateStyle); err != nil {
			return fmt.Errorf("failed to style %s: %w", cell, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "F", 20); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("can not create directory for %s: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", cell, err)
	}
	return nil
}
