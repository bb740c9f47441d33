package db

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does
	// not exist.
	ErrNotFound = errors.New("record not found")
	// ErrRoleInUse is returned when a role deletion is blocked because
	// users still reference the role.
	ErrRoleInUse = errors.New("role has associated users")
	// ErrConstraint is returned when a write references a row that does
	// not exist.
	ErrConstraint = errors.New("foreign key constraint violated")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate value")
)
