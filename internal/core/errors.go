package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every failing operation wraps exactly one of these so that
// callers can classify the failure with errors.Is instead of matching
// message text.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrIntegrity  = errors.New("storage constraint violated")
)

var (
	ErrInvalidDate   = fmt.Errorf("%w: date must be a real YYYY-MM-DD date", ErrValidation)
	ErrInvalidMonth  = fmt.Errorf("%w: month must be a real YYYY-MM month", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrEmptyName     = fmt.Errorf("%w: category name is empty", ErrValidation)
)
