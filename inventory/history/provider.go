package history

import (
	"atlas-pantry/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getForOwner(ownerId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where(&entity{OwnerId: ownerId}).Order("created_at DESC").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getForItem(ownerId uint32, itemId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where(&entity{OwnerId: ownerId, ItemId: itemId}).Order("created_at DESC").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:             e.ID,
		ownerId:        e.OwnerId,
		itemId:         e.ItemId,
		itemName:       e.ItemName,
		action:         e.Action,
		quantityChange: e.QuantityChange,
		transactionId:  e.TransactionId,
		notes:          e.Notes,
		createdAt:      e.CreatedAt,
	}, nil
}
