package postgres

import (
	"fmt"

	"parcelhub/internal/adapters/out/postgres/deliveryorderrepo"
	"parcelhub/internal/adapters/out/postgres/outboxrepo"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. Driver errors are translated, so unique violations
// arrive as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the adapters use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&deliveryorderrepo.DeliveryOrderDTO{},
		&deliveryorderrepo.DeliveryOrderParcelDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
