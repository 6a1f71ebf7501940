// Package prompt asks the operator questions on the terminal using huh forms.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var errValueRequired = errors.New("a value is required")

// Terminal prompts on the controlling terminal. Accessible mode replaces the
// interactive widgets with plain line prompts, which is what we want when
// stdin is a pipe.
type Terminal struct {
	Accessible bool
}

// NewTerminal returns a prompter that switches to accessible mode when stdin
// is not a terminal.
func NewTerminal() *Terminal {
	return &Terminal{Accessible: !isInteractive()}
}

// Confirm asks a yes/no question. defaultYes selects the preset answer.
func (t *Terminal) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	answer := defaultYes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).WithAccessible(t.Accessible)

	if err := run(ctx, form); err != nil {
		return false, err
	}
	return answer, nil
}

// Input asks for a single line of text and returns it exactly as typed.
// Blank answers are rejected and asked again. Callers compare answers
// byte for byte, so whitespace is never trimmed here.
func (t *Terminal) Input(ctx context.Context, label string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				Value(&value).
				Validate(validateRequired),
		),
	).WithAccessible(t.Accessible)

	if err := run(ctx, form); err != nil {
		return "", err
	}
	return value, nil
}

func run(ctx context.Context, form *huh.Form) error {
	return classify(form.RunWithContext(ctx))
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("prompt interrupted: %w", context.Canceled)
	}
	return fmt.Errorf("prompt failed: %w", err)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errValueRequired
	}
	return nil
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
