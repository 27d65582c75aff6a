package apperrors

import "errors"

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrUnknownColumn   = errors.New("refinement references unknown column")
	ErrNilRefinement   = errors.New("refinement produced no validator")
	ErrUnknownBackend  = errors.New("unknown introspection backend")
)
