package validator

import "errors"

// ErrValidationFailed matches every error returned by Apply via errors.Is.
var ErrValidationFailed = errors.New("validation failed")
