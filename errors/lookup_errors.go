// errors/lookup_errors.go
package errors

import "errors"

var (
	ErrInvalidSearchQuery    = errors.New("search query cannot be empty")
	ErrSearchQueryTooLong    = errors.New("search query exceeds maximum length")
	ErrInvalidCategory       = errors.New("category cannot be empty")
	ErrInvalidSkillPayload   = errors.New("skills must be a list of strings")
	ErrLookupDataUnavailable = errors.New("reference data unavailable")
)
