// Package cli holds the interactive prompts used by the command-line tools.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices given")

// PromptFloat asks for a number until the input parses as a float64.
func PromptFloat(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateFloat,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(txt), 64)
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}

	return nil
}

// Select asks the user to pick one of choices. Typing filters the list by
// prefix.
func Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	_, choice, err := sel.Run()
	if err != nil {
		return "", err
	}

	return choice, nil
}

func prefixSearcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if len(input) == 0 {
			return true
		}

		return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
	}
}
