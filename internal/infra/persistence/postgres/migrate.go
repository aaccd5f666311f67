package postgres

import (
	"context"

	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and foreign key.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}
