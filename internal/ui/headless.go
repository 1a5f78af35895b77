// Package ui provides the interactive surface of the CLI: TTY detection and
// the confirmation prompt mutating commands show before writing. The audit
// pipeline itself never prompts; commands inject a Prompter where they need
// confirmation.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager detects whether the process runs without a terminal, with
// an optional override for flags like --yes and for tests.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when prompts cannot (or should not) be shown.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
