// Package validation holds the field-level checks used by the user data
// layer. Checks fail loudly: any invalid field aborts the operation that
// supplied it.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewUserInput carries the raw fields of a user creation request.
type NewUserInput struct {
	FirstName string `validate:"required,max=128"`
	LastName  string `validate:"required,max=128"`
	Email     string `validate:"required,email"`
	Username  string `validate:"required,min=3,max=64"`
	Password  string `validate:"required,min=8"`
}

// CheckUser trims and validates the fields of a user creation request and
// returns the cleaned input.
func CheckUser(in NewUserInput) (NewUserInput, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if err := validate.Struct(in); err != nil {
		return in, fmt.Errorf("invalid user input: %w", err)
	}
	return in, nil
}

// CheckID verifies that id is a well-formed record identity (UUID) and
// returns it trimmed. objName labels the error for the caller.
func CheckID(id, objName string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%s id cannot be empty", objName)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid %s id %q: %w", objName, id, err)
	}
	return id, nil
}

// CheckString verifies that s is a non-empty string after trimming.
func CheckString(s, name string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s cannot be empty or whitespace", name)
	}
	return s, nil
}
