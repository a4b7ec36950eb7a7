// errors/student_errors.go
package errors

import "errors"

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentConflict    = errors.New("student already exists")
	ErrInvalidStudentData = errors.New("invalid student data")
)
