package storage

import (
	"atlas-pantry/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(ownerId uint32, id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{OwnerId: ownerId, ID: id})
	}
}

func getByName(ownerId uint32, name string) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, map[string]interface{}{"owner_id": ownerId, "name": name})
	}
}

func getForOwner(ownerId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where(&entity{OwnerId: ownerId}).Order("name").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func getOtherForOwner(ownerId uint32, excludedId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		var result entity
		err := db.Where("owner_id = ? AND id <> ?", ownerId, excludedId).Order("id").First(&result).Error
		if err != nil {
			return model.ErrorProvider[entity](err)
		}
		return model.FixedProvider(result)
	}
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:           e.ID,
		ownerId:      e.OwnerId,
		name:         e.Name,
		locationType: e.LocationType,
		description:  e.Description,
		createdAt:    e.CreatedAt,
	}, nil
}
