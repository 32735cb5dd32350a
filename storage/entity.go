package storage

import (
	"time"

	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID           uint32 `gorm:"primaryKey;autoIncrement;not null"`
	OwnerId      uint32 `gorm:"not null;uniqueIndex:owner_name;index"`
	Name         string `gorm:"not null;uniqueIndex:owner_name"`
	LocationType string `gorm:"not null"`
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e entity) TableName() string {
	return "storage_locations"
}
