package views

import (
	"github.com/hance08/concil/internal/rules"
	"github.com/hance08/concil/internal/utils"
	"github.com/pterm/pterm"
)

func RenderFeeTable(fees []rules.FeeDescription) error {
	tableData := pterm.TableData{
		{"Method", "Kind", "Fee"},
	}

	for _, f := range fees {
		value := f.Percent
		if f.Kind == rules.FeeFixed {
			value = utils.FormatBRL(f.Value)
		}
		tableData = append(tableData, []string{string(f.Method), string(f.Kind), value})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
