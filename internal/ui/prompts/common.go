package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/concil/internal/ui"
)

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	err := survey.AskOne(prompt, &confirm, ui.IconOption())
	return confirm, err
}
