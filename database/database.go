package database

import (
	"fmt"

	"artisan-storefront/internal/domain/billing"
	"artisan-storefront/internal/domain/users"
	"artisan-storefront/internal/localstorage"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB connects to Postgres and migrates the tables the storefront and
// the dev gateway use.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&localstorage.Entry{},
		&users.Account{},
		&billing.Order{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	logrus.Info("Connected and migrated successfully")
	return db, nil
}
