// Package apperr defines the typed failure taxonomy shared by services and
// HTTP handlers. It is the only sanctioned way for application code to signal
// an expected failure; anything else that escapes a handler is treated as an
// internal error at the HTTP boundary.
//
// Each kind carries a fixed HTTP status and a default human-readable message:
//
//   - NotFound     → 404 "Resource not found"
//   - Validation   → 422 "Validation error"
//   - Unauthorized → 401 "Unauthorized"
//   - Forbidden    → 403 "Forbidden"
//   - Internal     → 500 "Internal server error"
//
// Errors optionally carry a Details map with structured context (e.g. field
// validation failures). Details are rendered to JSON clients only; the HTML
// error fragment never includes them.
//
// Usage:
//
//	return apperr.NotFound(fmt.Sprintf("Item %d not found", id), nil)
//
//	return apperr.Validation("Validation error", map[string]any{
//	    "price": "must be greater than zero",
//	})
//
// Callers check kinds with errors.As:
//
//	var ae *apperr.Error
//	if errors.As(err, &ae) && ae.Kind == apperr.KindNotFound { … }
package apperr

import "net/http"

// Kind identifies the failure category. The HTTP status of an Error is fully
// determined by its Kind.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// kindStatus maps each kind to its fixed HTTP status code.
var kindStatus = map[Kind]int{
	KindNotFound:     http.StatusNotFound,
	KindValidation:   http.StatusUnprocessableEntity,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindInternal:     http.StatusInternalServerError,
}

// kindMessage holds the default message used when a constructor is called
// with an empty message.
var kindMessage = map[Kind]string{
	KindNotFound:     "Resource not found",
	KindValidation:   "Validation error",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindInternal:     "Internal server error",
}

// Error is a typed, expected failure. It travels unchanged from the point of
// detection to the HTTP error boundary, where it is translated into a JSON
// envelope or an HTML fragment.
type Error struct {
	Kind    Kind
	Message string
	details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Status returns the HTTP status code for the error's kind. Unknown kinds
// collapse to 500.
func (e *Error) Status() int {
	if s, ok := kindStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Details returns the structured context attached to the error. It never
// returns nil, so the JSON envelope always serializes `"details": {}` rather
// than null.
func (e *Error) Details() map[string]any {
	if e.details == nil {
		return map[string]any{}
	}
	return e.details
}

// newError builds an Error of the given kind, applying the kind's default
// message when msg is empty.
func newError(kind Kind, msg string, details map[string]any) *Error {
	if msg == "" {
		msg = kindMessage[kind]
	}
	return &Error{Kind: kind, Message: msg, details: details}
}

// NotFound reports that a requested resource does not exist.
func NotFound(msg string, details map[string]any) *Error {
	return newError(KindNotFound, msg, details)
}

// Validation reports that the request payload failed validation. Details
// typically map field names to their individual problems.
func Validation(msg string, details map[string]any) *Error {
	return newError(KindValidation, msg, details)
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(msg string, details map[string]any) *Error {
	return newError(KindUnauthorized, msg, details)
}

// Forbidden reports that the caller is not permitted to perform the operation.
func Forbidden(msg string, details map[string]any) *Error {
	return newError(KindForbidden, msg, details)
}

// Internal reports an unexpected server-side failure. The message is shown to
// callers, so it should stay generic; put diagnostics in logs, not here.
func Internal(msg string, details map[string]any) *Error {
	return newError(KindInternal, msg, details)
}
