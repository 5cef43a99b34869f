package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is bad user input. The operation is aborted before any write.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// NotFoundError is an unknown login or an unresolvable id.
type NotFoundError struct {
	Resource string
	Msg      string
}

func (e *NotFoundError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Resource + " not found"
}

// PreconditionError means the caller broke the operation contract,
// e.g. reconciling without a current user.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return "precondition failed: " + e.Msg }

// ConflictError is a uniqueness violation such as a taken email.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// ErrLimitReached is wrapped by image and interest cap violations.
var ErrLimitReached = errors.New("limit reached")

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// LimitReached reports a list cap violation on field.
func LimitReached(field string, max int) error {
	return fmt.Errorf("%w: %w", ErrLimitReached, &ValidationError{
		Field: field,
		Msg:   fmt.Sprintf("limit reached, at most %d allowed", max),
	})
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func Precondition(msg string) error {
	return &PreconditionError{Msg: msg}
}

func Conflict(msg string) error {
	return &ConflictError{Msg: msg}
}

// FromValidator turns validator/v10 errors into a ValidationError naming
// the first failing field. Other errors are returned unchanged.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	msg := "failed " + fe.Tag()
	if fe.Param() != "" {
		msg += "=" + fe.Param()
	}
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
