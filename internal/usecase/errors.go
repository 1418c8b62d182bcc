package usecase

import "errors"

var (
	// ErrNotFound is returned when an identifier does not resolve to a
	// stored record.
	ErrNotFound = errors.New("not found")

	// ErrBookInUse is returned when a book cannot be deleted because
	// copies of it still exist.
	ErrBookInUse = errors.New("book still has copies")

	// ErrDuplicate is returned when a unique constraint is violated,
	// eg registering an email twice.
	ErrDuplicate = errors.New("already exists")
)
