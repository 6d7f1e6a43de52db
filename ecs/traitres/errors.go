package traitres

import "errors"

var (
	// ErrResourceNotFound is raised when registering a resource type that is not stored.
	ErrResourceNotFound = errors.New("traitres: trying to register a nonexistent resource")

	// ErrNotImplemented is raised when a resource type does not implement the trait it is registered under.
	ErrNotImplemented = errors.New("traitres: resource does not implement trait")

	// ErrNotTrait is raised when a trait type parameter is not an interface type.
	ErrNotTrait = errors.New("traitres: trait must be an interface type")
)
