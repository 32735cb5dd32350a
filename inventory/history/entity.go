package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID             uint32    `gorm:"primaryKey;autoIncrement;not null"`
	OwnerId        uint32    `gorm:"index;not null"`
	ItemId         uint32    `gorm:"index;not null"`
	ItemName       string    `gorm:"not null"`
	Action         string    `gorm:"not null"`
	QuantityChange float64   `gorm:"not null"`
	TransactionId  uuid.UUID `gorm:"not null"`
	Notes          string
	CreatedAt      time.Time
}

func (e entity) TableName() string {
	return "inventory_history"
}
