package api

import (
	"errors"
	"net/http"
)

// FallbackMessage is surfaced when the backend provides no message field.
const FallbackMessage = "request failed"

// Kind classifies a backend failure. The original client collapsed not-found
// and unauthorized into one "please log in" state; they are kept distinct here
// and callers decide whether to collapse them.
type Kind int

const (
	// KindRequest covers network failures and generic non-2xx responses.
	KindRequest Kind = iota
	// KindNotFound is a 404 from the backend.
	KindNotFound
	// KindUnauthorized is a 401 or 403 from the backend.
	KindUnauthorized
)

// Error is a backend request failure carrying the HTTP status, the failure
// kind, and the backend-provided message. Message stays empty when the
// backend sent none, so a backend message that happens to spell the generic
// fallback text is still treated as provided.
type Error struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

func newError(status int, message string) *Error {
	kind := KindRequest
	switch status {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	}
	return &Error{Status: status, Kind: kind, Message: message}
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsUnauthorized reports whether err is a backend 401/403.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}

// IsUnreachable reports whether err is a transport-level failure where no
// response was received at all, as opposed to a backend rejection.
func IsUnreachable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == 0
}

// MessageOr returns the backend message carried by err, or fallback when the
// backend provided none.
func MessageOr(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
