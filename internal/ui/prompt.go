package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the user aborted a prompt (Ctrl+C / Esc).
var ErrCancelled = errors.New("ui: cancelled by user")

// Prompter asks the user yes/no questions. Commands hold a Prompter rather
// than reading stdin directly so the repair pipeline stays testable without
// a terminal.
type Prompter interface {
	// Confirm shows a yes/no prompt and returns the choice. In headless
	// mode it returns defaultValue without prompting.
	Confirm(title string, defaultValue bool) (bool, error)
}

// promptImpl implements Prompter with huh forms.
type promptImpl struct {
	headless *HeadlessManager
}

// NewPrompter creates a Prompter backed by the given headless manager.
func NewPrompter(hm *HeadlessManager) Prompter {
	return &promptImpl{headless: hm}
}

// Confirm implements Prompter.
func (p *promptImpl) Confirm(title string, defaultValue bool) (bool, error) {
	if p.headless.IsHeadless() {
		return defaultValue, nil
	}

	answer := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("prompt: %w", err)
	}
	return answer, nil
}

// StaticPrompter always answers with a fixed value. It backs --yes runs and
// tests.
type StaticPrompter bool

// Confirm implements Prompter.
func (s StaticPrompter) Confirm(string, bool) (bool, error) {
	return bool(s), nil
}
