package history

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, ownerId uint32, itemId uint32, itemName string, action string, quantityChange float64, transactionId uuid.UUID, notes string) (Model, error) {
	e := &entity{
		OwnerId:        ownerId,
		ItemId:         itemId,
		ItemName:       itemName,
		Action:         action,
		QuantityChange: quantityChange,
		TransactionId:  transactionId,
		Notes:          notes,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}
