// Package defs defines the error kinds shared by the core packages and the
// presentation layer.
package defs

import (
	"errors"
	"fmt"
)

// Error is a domain error with a stable code. Values are comparable,
// so wrapped sentinels can be matched with errors.Is.
type Error struct {
	Message string
	Code    string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateUsername  = "DUPLICATE_USERNAME"
	CodeDuplicateSubject   = "DUPLICATE_SUBJECT"
	CodeUnknownSubject     = "UNKNOWN_SUBJECT"
	CodeNotFound           = "NOT_FOUND"
	CodeNotEnrolled        = "NOT_ENROLLED"
	CodeInvalidGrade       = "INVALID_GRADE"
	CodeSubjectInUse       = "SUBJECT_IN_USE"
	CodeConflict           = "CONFLICT"
	CodeForbidden          = "FORBIDDEN"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInternal           = "INTERNAL"
)

var (
	ErrInvalidCredentials = Error{Message: "invalid username, password or role", Code: CodeInvalidCredentials}
	ErrDuplicateUsername  = Error{Message: "username is already taken", Code: CodeDuplicateUsername}
	ErrDuplicateSubject   = Error{Message: "subject name or code is already taken", Code: CodeDuplicateSubject}
	ErrUnknownSubject     = Error{Message: "no such subject", Code: CodeUnknownSubject}
	ErrNotFound           = Error{Message: "not found", Code: CodeNotFound}
	ErrNotEnrolled        = Error{Message: "not enrolled in this subject", Code: CodeNotEnrolled}
	ErrInvalidGrade       = Error{Message: "grade must be 0, 1 or 2", Code: CodeInvalidGrade}
	// ErrSubjectInUse is kept for a non-cascading delete policy; subject
	// deletion currently cascades and never returns it.
	ErrSubjectInUse       = Error{Message: "subject still has enrollments or assignments", Code: CodeSubjectInUse}
	ErrConflict           = Error{Message: "concurrent update, try again", Code: CodeConflict}
	ErrForbidden          = Error{Message: "no sufficient scope", Code: CodeForbidden}
	ErrUnauthorized       = Error{Message: "require authentication", Code: CodeUnauthorized}
	ErrInvalidInput       = Error{Message: "invalid input", Code: CodeInvalidInput}
)

// CodeOf returns the code of the first Error in err's chain, or
// CodeInternal if there is none.
func CodeOf(err error) string {
	var derr Error
	if errors.As(err, &derr) {
		return derr.Code
	}

	return CodeInternal
}

// Retryable reports whether the operation can be retried as is.
func Retryable(err error) bool {
	return errors.Is(err, ErrConflict)
}

// InvalidInput wraps ErrInvalidInput with a reason.
func InvalidInput(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidInput)
}
