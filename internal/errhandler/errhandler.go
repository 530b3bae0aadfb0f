package errhandler

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError reports err and returns the exit code for it. It never exits
// so the caller can release its resources first.
func HandleError(err error) int {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
