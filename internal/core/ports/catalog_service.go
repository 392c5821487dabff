package ports

import (
	"context"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context, samples []domain.Product) (int, error)
}

// ProductCache is a best-effort read cache in front of the product store.
// A miss is reported as ok=false with a nil error.
type ProductCache interface {
	GetList(ctx context.Context) (products []domain.Product, ok bool, err error)
	SetList(ctx context.Context, products []domain.Product) error
	Get(ctx context.Context, id int64) (product *domain.Product, ok bool, err error)
	Set(ctx context.Context, product *domain.Product) error
	Invalidate(ctx context.Context, ids ...int64) error
}
