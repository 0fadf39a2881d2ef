package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the error handler middleware.
var (
	ErrJournalNotFound    = errors.New("journal not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrLinkNotFound       = errors.New("link not found")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfLink           = errors.New("cannot link a node to itself")
	ErrEmptyTagName       = errors.New("tag name cannot be empty")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
