package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when an identifier does not resolve to a record.
var ErrNotFound = errors.New("not found")

// ValidationError maps field names to human-readable problems. It is
// returned when client input violates type, length, precision,
// required-ness or reference constraints.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records msgs against field. Empty msgs are ignored.
func (e *ValidationError) Add(field string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msgs...)
}

// Empty reports whether no field error was recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed")
	for i, name := range names {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Fields[name], " "))
	}
	return b.String()
}

// AuthError is an authentication failure. Detail is safe to show to the
// client; Code is a stable machine-readable tag.
type AuthError struct {
	Code   string
	Detail string
}

func (e *AuthError) Error() string {
	return e.Detail
}

var (
	ErrCredentialsMissing = &AuthError{
		Code:   "not_authenticated",
		Detail: "Authentication credentials were not provided.",
	}
	ErrTokenNotValid = &AuthError{
		Code:   "token_not_valid",
		Detail: "Given token not valid for any token type",
	}
	ErrTokenInvalidOrExpired = &AuthError{
		Code:   "token_not_valid",
		Detail: "Token is invalid or expired",
	}
	ErrNoActiveAccount = &AuthError{
		Code:   "no_active_account",
		Detail: "No active account found with the given credentials",
	}
	ErrAccountNotFound = &AuthError{
		Code:   "user_not_found",
		Detail: "User not found",
	}
	ErrAccountInactive = &AuthError{
		Code:   "user_inactive",
		Detail: "User is inactive",
	}
)
