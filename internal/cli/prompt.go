package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// promptMessage collects a todo message with a single-field form.
func promptMessage(ctx context.Context) (string, error) {
	var message string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New task").
				Description("What needs doing?").
				Placeholder("buy milk").
				Value(&message).
				Validate(validateRequired("Message")),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("add cancelled")
		}
		return "", fmt.Errorf("reading message: %w", err)
	}

	return message, nil
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
