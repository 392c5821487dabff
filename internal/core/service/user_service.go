package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// UserService is the administrative user CRUD. Callers are expected to have
// passed the access chain; role is never consulted.
type UserService struct {
	sessions ports.SessionProvider
	hasher   ports.PasswordHasher
	log      zerolog.Logger
}

func NewUserService(sessions ports.SessionProvider, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{sessions: sessions, hasher: hasher, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		users, err = sess.Users().List(ctx)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("list users", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		user, err = sess.Users().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("get user", err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	user, err := createUser(ctx, s.sessions, s.hasher, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// Update replaces name, email and role and always rehashes the password.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, wrapUnclassified("update user", err)
	}

	var updated *domain.User
	err = s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		users := sess.Users()
		current, err := users.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Email != current.Email {
			other, err := users.FindByEmail(ctx, in.Email)
			switch {
			case err == nil && other.ID != id:
				return domain.ErrEmailTaken
			case err != nil && !errors.Is(err, domain.ErrUserNotFound):
				return err
			}
		}

		current.Name = in.Name
		current.Email = in.Email
		current.Role = in.Role
		current.HashedPassword = hash
		updated, err = users.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("update user", err)
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes the user with id. The target must exist and must not be the caller.
func (s *UserService) Delete(ctx context.Context, callerID, id int64) error {
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		users := sess.Users()
		if _, err := users.FindByID(ctx, id); err != nil {
			return err
		}
		if id == callerID {
			return domain.ErrSelfDelete
		}
		return users.Delete(ctx, id)
	})
	if err != nil {
		return wrapUnclassified("delete user", err)
	}
	s.log.Info().Int64("user_id", id).Int64("deleted_by", callerID).Msg("user deleted")
	return nil
}
