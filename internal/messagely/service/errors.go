package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("invalid username/password")

	// ErrCreationFailed is returned when an insert reports success but yields
	// no row. It matches ErrBadRequest.
	ErrCreationFailed = fmt.Errorf("%w: user was not created", ErrBadRequest)
)

// badRequest wraps a validation failure so errors.Is(err, ErrBadRequest) holds
// and the field messages survive for the response.
func badRequest(err error) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
}
