package apierrors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Error is a request-scoped error carrying the HTTP status it maps to.
// Handlers attach one the moment a precondition fails; the error-translation
// middleware turns it into a {"msg": ...} response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{StatusCode: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: msg}
}

// FromBinding converts a gin binding failure into a BadRequest with a
// readable message instead of the raw validator dump.
func FromBinding(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return BadRequest("Please provide valid values for: " + strings.Join(fields, ", "))
	}
	return BadRequest(err.Error())
}

// Translate maps any error surfaced by a handler to an HTTP status and a
// client-safe message. Storage-layer validation failures become BadRequest;
// anything unrecognized becomes a generic 500.
func Translate(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Message
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Resource not found"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value") {
		return http.StatusBadRequest, "Duplicate value entered for a unique field"
	}
	return http.StatusInternalServerError, "Something went wrong, please try again later"
}
