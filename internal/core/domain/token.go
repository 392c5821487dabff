package domain

import (
	"errors"
	"time"
)

// TokenClaims is the payload carried by an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Token decode failures, checked in this order: signature, expiry, subject.
var (
	ErrMalformedToken   = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token has expired")
	ErrMissingSubject   = errors.New("token has no subject")
)
