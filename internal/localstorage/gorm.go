package localstorage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the local_storage_entries table.
type Entry struct {
	Key       string `gorm:"primaryKey;type:varchar(255)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "local_storage_entries" }

type Gorm struct {
	DB *gorm.DB
}

func (g Gorm) Get(ctx context.Context, key string) (string, error) {
	var e Entry
	err := g.DB.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

func (g Gorm) Set(ctx context.Context, key, value string) error {
	return g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&Entry{Key: key, Value: value}).Error
}

func (g Gorm) Remove(ctx context.Context, key string) error {
	return g.DB.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
}
