package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// AccountService implements registration and login.
type AccountService struct {
	sessions ports.SessionProvider
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAccountService(
	sessions ports.SessionProvider,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Register creates an active user. A duplicate email is reported as
// domain.ErrEmailTaken by the pre-check, or as a storage conflict when a
// concurrent registration wins the race.
func (s *AccountService) Register(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	user, err := createUser(ctx, s.sessions, s.hasher, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues an access token for the user's email.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var user *domain.User
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		user, err = sess.Users().FindByEmail(ctx, email)
		return err
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, domain.ErrWrongCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if err := s.hasher.Verify(password, user.HashedPassword); err != nil {
		s.log.Debug().Err(err).Int64("user_id", user.ID).Msg("password verification failed")
		return "", nil, domain.ErrWrongCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrInactiveLogin
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, user, nil
}

// createUser hashes the password outside the session so no transaction is
// held open during the bcrypt work.
func createUser(ctx context.Context, sessions ports.SessionProvider, hasher ports.PasswordHasher, in ports.UserInput) (*domain.User, error) {
	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	var created *domain.User
	err = sessions.WithinSession(ctx, func(sess ports.Session) error {
		_, err := sess.Users().FindByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return domain.ErrEmailTaken
		case !errors.Is(err, domain.ErrUserNotFound):
			return err
		}

		created, err = sess.Users().Create(ctx, &domain.User{
			Name:           in.Name,
			Email:          in.Email,
			Role:           in.Role,
			HashedPassword: hash,
			IsActive:       true,
		})
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("create user", err)
	}
	return created, nil
}

// wrapUnclassified adds op context to infrastructure errors and returns
// domain errors as they are.
func wrapUnclassified(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
