package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput marks caller errors that must be fixed before retrying:
	// ragged matrices, mismatched paired samples, unknown linkage rules.
	ErrInvalidInput = errors.New("invalid input")

	ErrRaggedMatrix   = fmt.Errorf("%w: matrix rows have unequal lengths", ErrInvalidInput)
	ErrUnknownLinkage = fmt.Errorf("%w: unknown linkage rule", ErrInvalidInput)

	// Persistence errors
	ErrNotFound = errors.New("resource not found")
)

// NewInvalidInputError builds an ErrInvalidInput with caller context.
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

// NewLengthMismatchError reports paired samples of different sizes.
func NewLengthMismatchError(operation string, n1, n2 int) error {
	return fmt.Errorf("%w: %s requires equal sample sizes, got %d and %d", ErrInvalidInput, operation, n1, n2)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
