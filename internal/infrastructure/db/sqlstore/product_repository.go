package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

const seedBatchSize = 100

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	rec := toProductRecord(product)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	recs := make([]productRecord, 0, len(products))
	for i := range products {
		rec := toProductRecord(&products[i])
		rec.ID = 0
		recs = append(recs, rec)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&recs, seedBatchSize).Error; err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var rec productRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, *rec.toDomain())
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	rec := toProductRecord(product)
	res := r.db.WithContext(ctx).Model(&productRecord{ID: rec.ID}).
		Select("name", "description", "price", "quantity").
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProductNotFound
	}
	return rec.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
