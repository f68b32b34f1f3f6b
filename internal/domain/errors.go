package domain

import "errors"

// Sentinel errors shared by the stores and the screening engine.
// Callers match them with errors.Is.
var (
	// ErrDuplicateTicker is returned on insert of an existing ticker
	// (case-insensitive).
	ErrDuplicateTicker = errors.New("ticker already exists")

	// ErrDuplicateSector is returned on insert of an existing sector name.
	ErrDuplicateSector = errors.New("sector already exists")

	// ErrNotFound is returned when a stock or sector lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSortField is returned when a sort specification names an
	// attribute outside the sortable-field registry.
	ErrInvalidSortField = errors.New("invalid sort field")
)
