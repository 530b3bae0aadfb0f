package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the question icon of survey prompts to "-".
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
