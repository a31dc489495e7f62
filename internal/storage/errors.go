package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPortInUse is returned when deleting a port that voyages still reference.
	ErrPortInUse = errors.New("port is referenced by existing voyages")

	// ErrInvalidPortReference is returned when a voyage names a port that does not exist.
	ErrInvalidPortReference = errors.New("invalid departure or arrival port id")
)

func notFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}
