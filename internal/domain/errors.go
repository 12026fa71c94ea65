package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist.
// Handlers should map this to HTTP 404. The kv adapter also returns it for
// absent keys, where callers fall back to a default instead of failing.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. invalid status value, rating out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when an admin operation is attempted without a
// prior successful login. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
