package service

import (
	"errors"
	"fmt"

	"github.com/job000/wedding2025-backend/internal/storage"
)

// Error kinds. Handlers map them onto HTTP statuses.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Error is a client-facing failure: Msg is safe to show, Kind says which status it gets.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func validation(format string, args ...any) error { return newError(ErrValidation, format, args...) }
func forbidden(format string, args ...any) error  { return newError(ErrForbidden, format, args...) }
func notFound(format string, args ...any) error   { return newError(ErrNotFound, format, args...) }

// StoreError is a persistence or blob failure. It surfaces as a 500 and is never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// storeErr converts a store failure, turning missing rows into what (e.g. "Media not found").
func storeErr(op string, err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound) && what != "":
		return notFound("%s not found", what)
	}
	return &StoreError{Op: op, Err: err}
}
