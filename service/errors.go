package service

import (
	"errors"
	"strings"

	"pagamentos/repository"
)

var (
	// ErrNotFound the referenced record does not exist
	ErrNotFound = repository.ErrNotFound
	// ErrUnauthenticated the operation was called without a signed-in actor
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials login failed
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError one or more rule violations; the mutation was not applied.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newValidationError(msgs ...string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

// Actor the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Email  string
}

// Authenticated reports whether the actor came from a verified session.
func (a Actor) Authenticated() bool {
	return a.UserID != 0
}

func requireActor(a Actor) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}
