package prompts

import "github.com/charmbracelet/huh"

// PromptTransactionID asks for the id to search. Known ids are offered as
// suggestions. The answer is returned untrimmed.
func PromptTransactionID(known []string) (string, error) {
	var id string

	input := huh.NewInput().
		Title("Transaction ID").
		Description("Enter to search, empty to skip, Ctrl+C to quit").
		Placeholder("TX-001").
		Suggestions(known).
		Value(&id)

	err := input.Run()
	return id, err
}
