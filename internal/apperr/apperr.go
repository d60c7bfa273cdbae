// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the error taxonomy shared by every stage of the
// request pipeline.
//
// Any stage may return an [*Error] carrying the HTTP status and the message
// that should reach the client. Errors without a recognized status (plain Go
// errors, driver errors, panics) are treated as unclassified and collapse
// into a 500 response by [Classify].
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Default messages used by the pipeline when a stage has nothing more
// specific to say.
const (
	MsgAuthorizationRequired = "Authorization required"
	MsgInvalidToken          = "Invalid token"
	MsgForbidden             = "Forbidden"
	MsgNotFound              = "Requested resource not found"
	MsgTooManyRequests       = "Too many requests, please try again later."
	MsgBodyTooLarge          = "request entity too large"

	// internalPrefix is prepended to the original error text of every
	// unclassified failure.
	internalPrefix = "something went wrong with the server: "
)

// Error is the error value raised by pipeline stages and handlers.
//
// Status is optional: a zero Status marks the error as unclassified.
// Message is what the client sees; Cause is kept for logging and for
// [errors.Is] / [errors.As] matching and is never sent to the client
// unless the error ends up unclassified.
type Error struct {
	Status  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Wrap returns a copy of e with cause attached. The receiver is not mutated,
// so package-level template errors can be reused safely.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Status: e.Status, Message: e.Message, Cause: cause}
}

// New builds an error with an explicit status. It is used for the few
// pipeline statuses outside the named kinds (413, 429).
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Validation reports input that failed shape or content constraints (400).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Authentication reports a missing, malformed or invalid credential (401).
func Authentication(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Authorization reports a valid credential without sufficient rights (403).
func Authorization(message string) *Error {
	if message == "" {
		message = MsgForbidden
	}
	return New(http.StatusForbidden, message)
}

// NotFound reports an unmatched route or an absent resource (404).
func NotFound(message string) *Error {
	if message == "" {
		message = MsgNotFound
	}
	return New(http.StatusNotFound, message)
}

// Conflict reports a uniqueness violation (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal wraps cause as an explicitly internal failure (500). The message
// is ignored by [Classify]; the client sees the generic wrapper instead.
func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Cause: cause}
}

// Classified is the (status, message) pair written to the client.
type Classified struct {
	Status  int
	Message string
}

// Classify maps any error to exactly one [Classified] value.
//
// An [*Error] anywhere in the chain whose Status is a 4xx client error and
// whose Message is non-empty passes through unchanged. Everything else is
// reported as 500 with the generic prefix followed by the original error
// text.
func Classify(err error) Classified {
	var appErr *Error
	if errors.As(err, &appErr) && isRecognized(appErr.Status) && appErr.Message != "" {
		return Classified{Status: appErr.Status, Message: appErr.Message}
	}

	return Classified{
		Status:  http.StatusInternalServerError,
		Message: internalPrefix + errorText(err),
	}
}

// StatusOf is a shortcut for Classify(err).Status.
func StatusOf(err error) int {
	return Classify(err).Status
}

func isRecognized(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}

	// report the innermost cause of an unclassified *Error so the
	// diagnostic text is not prefixed twice
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Cause != nil && appErr.Message == "" {
		return appErr.Cause.Error()
	}
	return err.Error()
}
