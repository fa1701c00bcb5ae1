package db

import "errors"

// Domain-level database error sentinels.
var (
	// Report errors
	ErrReportNotFound = errors.New("report not found")

	// Contact errors
	ErrContactNotFound = errors.New("contact not found")
)
