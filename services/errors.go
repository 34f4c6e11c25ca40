package services

import "errors"

// ErrInvalidInput marks a client-side validation failure. Services wrap it
// with a human-readable message before any write is attempted; controllers
// translate it to a 400 response. Anything else that comes back from a
// service is a storage failure.
var ErrInvalidInput = errors.New("invalid input")
