package entities

import "errors"

// ErrValidation is the sentinel wrapped by every constructor failure.
// Match with errors.Is to distinguish bad input from infrastructure errors.
var ErrValidation = errors.New("validation failed")
