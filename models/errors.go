package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// StorageUnavailableError is rendered with the http status code 500
	StorageUnavailableError = errors.New("storage unavailable")
)

// Input related errors
var (
	// MissingFieldError is returned when a required field of a request is absent
	MissingFieldError = errors.Wrap(BadParameterError, "missing required fields")

	// InvalidIdentifierError is returned when an identifier is not a well formed UUID
	InvalidIdentifierError = errors.Wrap(BadParameterError, "invalid identifier")
)
