package ports

import (
	"context"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

// UserInput carries the writable fields of a user.
type UserInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

type AccountService interface {
	Register(ctx context.Context, in UserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, callerID, id int64) error
}

// AccessControl turns a bearer token into an authenticated, active user.
type AccessControl interface {
	Authorize(ctx context.Context, token string) (*domain.User, error)
}
