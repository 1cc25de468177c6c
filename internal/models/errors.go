package models

import "errors"

// Storage-layer constraint violations are wrapped so handlers can map them to
// a 4xx response instead of a generic persistence failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("duplicate value")
)
