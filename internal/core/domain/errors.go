package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaNotFound indicates the referenced schema file does not
	// exist in the schema directory. Fatal to the specific import or
	// documentation call, never to the process.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrSchemaParse indicates the schema file contains malformed YAML.
	ErrSchemaParse = errors.New("schema parse failed")

	// ErrCollectionNotAccessible indicates none of the requested
	// collection names resolve for the tenant. Surfaced to callers as
	// an explicit "not accessible" message, never a generic error.
	ErrCollectionNotAccessible = errors.New("collection not accessible")

	// ErrUnknownEntryType indicates no field mapper is registered for
	// the requested entry type.
	ErrUnknownEntryType = errors.New("unknown entry type")

	// ErrSearchUnavailable indicates the entry store is not configured.
	ErrSearchUnavailable = errors.New("search unavailable")
)
