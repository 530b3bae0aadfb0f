package ui

import (
	"fmt"

	"github.com/hance08/concil/internal/constants"
	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green line between blocks of output.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// StatusColor paints portal statuses: approved green, divergent red,
// pending yellow.
func StatusColor(status string) string {
	switch status {
	case constants.StatusApproved:
		return pterm.Green(status)
	case constants.StatusDivergent:
		return pterm.Red(status)
	case constants.StatusPending:
		return pterm.Yellow(status)
	default:
		return status
	}
}
