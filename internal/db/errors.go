package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrJobAdNotFound = errors.New("job ad not found")
)
