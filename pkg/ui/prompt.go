package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
)

// ConfirmOverwrite asks whether the page at path may be replaced.
func ConfirmOverwrite(path string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
		Affirmative("Overwrite").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, nil
}

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
