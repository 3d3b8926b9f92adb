// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package legalapi provides the HTTP client for the Legal Assistant Chatbot API.
package legalapi

import (
	"errors"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the legal API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeServerDetail
	ErrTypeTimeout
	ErrTypeUnreachable
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "legal API is not reachable"}
)

// NewDetailError wraps a detail string reported by the backend. The detail is
// shown to the user verbatim, so it is kept free of any client-side prefix.
func NewDetailError(detail string) *ClientError {
	return &ClientError{Type: ErrTypeServerDetail, Message: detail}
}

// IsTimeout reports whether err is a timeout from the client.
func IsTimeout(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeTimeout
}

// IsUnreachable reports whether err means the backend could not be reached.
func IsUnreachable(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeUnreachable
}

// Detail extracts a server-reported detail string from err, if it carries one.
func Detail(err error) (string, bool) {
	var ce *ClientError
	if errors.As(err, &ce) && ce.Type == ErrTypeServerDetail {
		return ce.Message, true
	}
	return "", false
}
