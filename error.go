package wordseek

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ELANGUAGE  = "language_not_found"
	EETYMOLOGY = "etymology_unavailable"
	EMALFORMED = "malformed_section"
	EUPSTREAM  = "upstream"
)

// User-facing messages shared by the fetcher and the extractor.
const (
	MsgWordNotFound         = "Word not found."
	MsgLanguageNotFound     = "Word not found in that language. However, it is available in other languages."
	MsgEtymologyUnavailable = "Wiktionary etymology not available for this word."
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wordseek error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UpstreamError reports a non-success response from the page source.
type UpstreamError struct {
	Status     int
	StatusText string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Something went wrong retrieving Wiktionary data:\nError %d: %s", e.Status, e.StatusText)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return EUPSTREAM
	}

	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Error()
	}

	return "Internal error."
}
