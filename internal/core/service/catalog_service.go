package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// CatalogService is the open product CRUD. Reads go through cache when one is
// configured; writes invalidate it once the session has committed.
type CatalogService struct {
	sessions ports.SessionProvider
	cache    ports.ProductCache
	log      zerolog.Logger
}

// NewCatalogService returns a CatalogService. cache may be nil.
func NewCatalogService(sessions ports.SessionProvider, cache ports.ProductCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{sessions: sessions, cache: cache, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.GetList(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache read failed, reading storage")
		} else if ok {
			return products, nil
		}
	}

	var products []domain.Product
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		products, err = sess.Products().List(ctx)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("list products", err)
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache != nil {
		product, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Int64("product_id", id).Msg("product cache read failed, reading storage")
		} else if ok {
			return product, nil
		}
	}

	var product *domain.Product
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		product, err = sess.Products().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("get product", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.log.Warn().Err(err).Int64("product_id", id).Msg("product cache write failed")
		}
	}
	return product, nil
}

func (s *CatalogService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var created *domain.Product
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		var err error
		created, err = sess.Products().Create(ctx, &product)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("create product", err)
	}
	s.invalidate(ctx)
	return created, nil
}

// Update applies the non-zero fields of patch to the stored product.
func (s *CatalogService) Update(ctx context.Context, id int64, patch domain.Product) (*domain.Product, error) {
	var updated *domain.Product
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		products := sess.Products()
		current, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		merged := current.Merge(patch)
		updated, err = products.Update(ctx, &merged)
		return err
	})
	if err != nil {
		return nil, wrapUnclassified("update product", err)
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		return sess.Products().Delete(ctx, id)
	})
	if err != nil {
		return wrapUnclassified("delete product", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// Seed inserts samples when the catalog is empty and reports how many rows
// were written. Count and insert share one session.
func (s *CatalogService) Seed(ctx context.Context, samples []domain.Product) (int, error) {
	inserted := 0
	err := s.sessions.WithinSession(ctx, func(sess ports.Session) error {
		products := sess.Products()
		n, err := products.Count(ctx)
		if err != nil || n > 0 {
			return err
		}
		if err := products.CreateBatch(ctx, samples); err != nil {
			return err
		}
		inserted = len(samples)
		return nil
	})
	if err != nil {
		return 0, wrapUnclassified("seed products", err)
	}
	if inserted > 0 {
		s.invalidate(ctx)
		s.log.Info().Int("count", inserted).Msg("product catalog seeded")
	}
	return inserted, nil
}

func (s *CatalogService) invalidate(ctx context.Context, ids ...int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ids...); err != nil {
		s.log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
