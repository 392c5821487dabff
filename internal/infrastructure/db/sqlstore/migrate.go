package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const userNameIndex = "idx_users_name"

// MigrateOptions tunes the schema created by Migrate.
type MigrateOptions struct {
	// UniqueUserName adds a unique index on users.name; when false the index
	// is dropped if an earlier run created it.
	UniqueUserName bool
}

// Migrate creates or updates the users and product tables.
func Migrate(ctx context.Context, db *gorm.DB, opts MigrateOptions) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&userRecord{}, &productRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	stmt := "DROP INDEX IF EXISTS " + userNameIndex
	if opts.UniqueUserName {
		stmt = "CREATE UNIQUE INDEX IF NOT EXISTS " + userNameIndex + " ON users (name)"
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("user name index: %w", err)
	}
	return nil
}
