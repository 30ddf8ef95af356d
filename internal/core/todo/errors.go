package todo

import "errors"

var (
	// ErrInvalidDate is returned when a due date is constructed from an
	// unrepresentable instant.
	ErrInvalidDate = errors.New("invalid due date")
	// ErrInvalidDateString is returned when a due date string cannot be parsed.
	ErrInvalidDateString = errors.New("invalid due date string")
	// ErrInvalidDateComponents is returned when year/month/day components do
	// not form a real calendar date.
	ErrInvalidDateComponents = errors.New("invalid due date components")
	// ErrPastDate is returned when a due date is more than one calendar day in
	// the past and past dates were not explicitly allowed.
	ErrPastDate = errors.New("due date is in the past")
	// ErrInvalidStateTransition is returned when a mutator is called from a
	// status that does not permit it. The entity is left unchanged.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrEmptyTitle is returned when a title is blank after trimming.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrNotFound is returned when a todo item does not exist in a store.
	ErrNotFound = errors.New("todo item not found")
	// ErrDuplicateID is returned when a create would reuse an existing ID.
	ErrDuplicateID = errors.New("todo item id already exists")
	// ErrVersionConflict is returned when an update is attempted against a
	// stale aggregate version.
	ErrVersionConflict = errors.New("todo item version conflict")
)
