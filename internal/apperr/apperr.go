package apperr

import (
	"errors"
	"fmt"
)

// Error kinds shared by every domain package. Services wrap these with
// fmt.Errorf("%w: ...") so callers can branch with errors.Is while the
// transport layer maps each kind to an HTTP status.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrExpired    = errors.New("expired")
	ErrUpstream   = errors.New("upstream failure")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrValidation, args)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrConflict, args)...)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrForbidden, args)...)
}

func Expiredf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrExpired, args)...)
}

func Upstreamf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrUpstream, args)...)
}

func prepend(err error, args []any) []any {
	return append([]any{err}, args...)
}
