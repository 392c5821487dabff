package sqlstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

const pgUniqueViolation = "23505"

// SessionProvider hands out transaction-scoped sessions over one *gorm.DB.
type SessionProvider struct {
	db *gorm.DB
}

func NewSessionProvider(db *gorm.DB) *SessionProvider {
	return &SessionProvider{db: db}
}

type session struct {
	users    *UserRepository
	products *ProductRepository
}

func (s *session) Users() ports.UserRepository       { return s.users }
func (s *session) Products() ports.ProductRepository { return s.products }

// WithinSession runs fn inside a transaction bound to ctx. A unique violation
// raised at commit is reported the same way as one raised by a statement.
func (p *SessionProvider) WithinSession(ctx context.Context, fn func(s ports.Session) error) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&session{
			users:    NewUserRepository(tx),
			products: NewProductRepository(tx),
		})
	})
	return translate(err)
}

// translate maps storage constraint failures onto domain errors and leaves
// everything else untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	if isUniqueViolation(err) {
		return errors.Join(domain.ErrDuplicateUser, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
