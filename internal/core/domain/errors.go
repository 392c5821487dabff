package domain

import "errors"

// Error kinds. Every failure a caller can observe unwraps to exactly one of these.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Error is a classified failure whose message is safe to return to clients.
type Error struct {
	kind error
	msg  string
}

// NewError returns an *Error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind so errors.Is(err, ErrConflict) and friends work.
func (e *Error) Unwrap() error { return e.kind }

var (
	ErrMissingToken     = NewError(ErrUnauthenticated, "Not authenticated")
	ErrInvalidToken     = NewError(ErrUnauthenticated, "Could not validate credentials")
	ErrIdentityNotFound = NewError(ErrUnauthenticated, "user not found")
	ErrWrongCredentials = NewError(ErrUnauthenticated, "wrong credentials")
	ErrInactiveLogin    = NewError(ErrUnauthenticated, "inactive user")

	ErrInactiveUser = NewError(ErrForbidden, "inactive user")

	ErrEmailTaken    = NewError(ErrConflict, "Email already registered")
	ErrDuplicateUser = NewError(ErrConflict, "user already exists")

	ErrUserNotFound    = NewError(ErrNotFound, "User not found")
	ErrProductNotFound = NewError(ErrNotFound, "Product not found")

	ErrSelfDelete = NewError(ErrInvalidOperation, "Cannot delete yourself")
)

// Message returns the client-facing text for err: the message of the first
// *Error in its chain, or "internal server error" for anything unclassified.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.msg
	}
	return "internal server error"
}
