package service

import "errors"

// Sentinel errors services wrap with fmt.Errorf("...: %w", Err...) so
// controllers can map them onto HTTP statuses with errors.Is. Anything
// not matching one of these is an upstream/internal failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)
