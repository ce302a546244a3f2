package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRecord signals a store document that cannot be mapped to a domain record.
	ErrInvalidRecord = errors.New("invalid record")
)

// KeyPrefix namespaces every key this service reads from the shared store.
const KeyPrefix = "studyfind:"
