package inventory

import (
	"time"

	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID           uint32  `gorm:"primaryKey;autoIncrement;not null"`
	OwnerId      uint32  `gorm:"uniqueIndex:owner_location_name;index;not null"`
	LocationId   uint32  `gorm:"uniqueIndex:owner_location_name;index;not null"`
	Name         string  `gorm:"uniqueIndex:owner_location_name;not null"`
	Category     string  `gorm:"index"`
	Quantity     float64 `gorm:"not null"`
	Unit         string
	ExpiryDate   *time.Time
	PurchaseDate time.Time
	Notes        string
	Version      uint32 `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e entity) TableName() string {
	return "inventory_items"
}
