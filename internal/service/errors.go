package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Handlers map them to HTTP
// statuses; nothing below the HTTP boundary retries.
var (
	// ErrValidacion marks malformed input to a write operation. The
	// operation is never partially applied.
	ErrValidacion = errors.New("validacion")

	// ErrAlmacenamiento marks a store read/write failure. The caller must
	// assume the operation did NOT complete.
	ErrAlmacenamiento = errors.New("almacenamiento")
)

func validacion(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidacion, fmt.Sprintf(format, args...))
}

func almacenamiento(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrAlmacenamiento, op, err)
}
