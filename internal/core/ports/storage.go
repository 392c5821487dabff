package ports

import (
	"context"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

// UserRepository persists users. Lookups that find nothing return
// domain.ErrUserNotFound; unique violations return a domain.ErrConflict kind.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	CreateBatch(ctx context.Context, products []domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Session is a unit of work against storage.
type Session interface {
	Users() UserRepository
	Products() ProductRepository
}

// SessionProvider scopes a Session to one call. The session is committed when
// fn returns nil, rolled back otherwise, and released in every case.
type SessionProvider interface {
	WithinSession(ctx context.Context, fn func(s Session) error) error
}
