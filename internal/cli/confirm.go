package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question on the terminal. Aborting the prompt counts
// as "no". Tests replace it.
var Confirm = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
