// errors/company_errors.go
package errors

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyConflict    = errors.New("company already exists")
	ErrInvalidCompanyData = errors.New("invalid company data")
	ErrDatabaseOperation  = errors.New("database operation failed")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
)
