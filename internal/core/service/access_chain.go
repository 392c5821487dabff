package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// AccessChain resolves a bearer token to an active user. Nothing is cached:
// every call decodes the token and reads the user again.
type AccessChain struct {
	sessions ports.SessionProvider
	tokens   ports.TokenCodec
}

func NewAccessChain(sessions ports.SessionProvider, tokens ports.TokenCodec) *AccessChain {
	return &AccessChain{sessions: sessions, tokens: tokens}
}

// Authorize runs ResolveIdentity then RequireActive.
func (a *AccessChain) Authorize(ctx context.Context, token string) (*domain.User, error) {
	user, err := a.ResolveIdentity(ctx, token)
	if err != nil {
		return nil, err
	}
	return a.RequireActive(user)
}

// ResolveIdentity decodes token and loads the user named by its subject.
// Decode failures keep their cause in the chain but surface as
// domain.ErrInvalidToken; an unknown subject is domain.ErrIdentityNotFound.
func (a *AccessChain) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := a.tokens.Decode(token)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}

	var user *domain.User
	err = a.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		user, err = sess.Users().FindByEmail(ctx, claims.Subject)
		return err
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}

// RequireActive rejects inactive users with domain.ErrInactiveUser.
func (a *AccessChain) RequireActive(user *domain.User) (*domain.User, error) {
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}
