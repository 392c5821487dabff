package sqlstore

import "github.com/99minutos/user-catalog-api/internal/core/domain"

type userRecord struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"column:name"`
	Email          string `gorm:"column:email;uniqueIndex:idx_users_email;not null"`
	Role           string `gorm:"column:role;not null"`
	HashedPassword string `gorm:"column:hashed_password;not null"`
	IsActive       *bool  `gorm:"column:is_active;default:true"`
}

func (userRecord) TableName() string { return "users" }

type productRecord struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;index:idx_product_name"`
	Description string  `gorm:"column:description"`
	Price       float64 `gorm:"column:price"`
	Quantity    int     `gorm:"column:quantity"`
}

func (productRecord) TableName() string { return "product" }

func toUserRecord(u *domain.User) userRecord {
	active := u.IsActive
	return userRecord{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		HashedPassword: u.HashedPassword,
		IsActive:       &active,
	}
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Role:           r.Role,
		HashedPassword: r.HashedPassword,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}
}

func toProductRecord(p *domain.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}
