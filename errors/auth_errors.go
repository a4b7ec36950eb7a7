// errors/auth_errors.go
package errors

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("insufficient permissions")
	ErrAdminKeyRequired = errors.New("admin key required")
	ErrAdminKeyInvalid  = errors.New("invalid admin key")
)
