// Package apierror defines the tagged error taxonomy shared by services and
// handlers. Every failure a service returns carries a Kind; the HTTP layer
// maps kinds to status codes and never exposes internal error text to
// clients.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for HTTP mapping.
type Kind int

const (
	// KindValidation: a required or malformed field in the request body.
	KindValidation Kind = iota
	// KindBadID: a path parameter that is not a valid identifier.
	KindBadID
	// KindUnauthorized: missing or invalid credentials.
	KindUnauthorized
	// KindNotFound: the referenced record does not exist (or is inactive).
	KindNotFound
	// KindConflict: a uniqueness or business-rule violation on a write.
	KindConflict
	// KindInternal: anything else. The client only ever sees a generic message.
	KindInternal
)

// Error is the canonical application error.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field messages for validation failures, in request
	// order so callers can rely on the first element.
	Fields []FieldError
	cause  error
}

// FieldError is one field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation builds a 400 error with a single field message.
func Validation(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Fields:  []FieldError{{Field: field, Message: message}},
	}
}

// ValidationFields builds a 400 error from an ordered field-message list.
func ValidationFields(fields []FieldError) *Error {
	msg := "Error de validacion"
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// BadID builds the 400 error for a malformed identifier. The message format
// is part of the API contract.
func BadID(value string) *Error {
	return &Error{Kind: KindBadID, Message: fmt.Sprintf("%s no es un identificador valido", value)}
}

// Unauthorized builds a 401 error. The same message is used for wrong
// password, unknown username and inactive account so callers cannot probe
// which accounts exist.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound builds a 404 error with an entity-specific message,
// e.g. "Cliente no encontrado".
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409 error for uniqueness/business-rule violations.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected error. The cause is kept for logging only.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Error interno del servidor", cause: cause}
}

// Wrap classifies an arbitrary error: known *Error values pass through,
// everything else becomes Internal.
func Wrap(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch Wrap(err).Kind {
	case KindValidation, KindBadID:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Response is the error envelope for all 4xx/5xx bodies.
type Response struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Payload builds the response body for an error. Internal causes are
// stripped here so handlers cannot leak them by accident.
func Payload(err error) Response {
	e := Wrap(err)
	return Response{OK: false, Message: e.Message, Errors: e.Fields}
}
