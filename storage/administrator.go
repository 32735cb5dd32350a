package storage

import (
	"gorm.io/gorm"
)

func create(db *gorm.DB, ownerId uint32, name string, locationType string, description string) (Model, error) {
	e := &entity{
		OwnerId:      ownerId,
		Name:         name,
		LocationType: locationType,
		Description:  description,
	}

	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

func update(db *gorm.DB, id uint32, updaters ...entityUpdater) error {
	columns := make(map[string]interface{})
	for _, updater := range updaters {
		updater(columns)
	}
	if len(columns) == 0 {
		return nil
	}
	return db.Model(&entity{}).Where("id = ?", id).Updates(columns).Error
}

type entityUpdater func(columns map[string]interface{})

func setName(name string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["name"] = name
	}
}

func setLocationType(locationType string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["location_type"] = locationType
	}
}

func setDescription(description string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["description"] = description
	}
}

func remove(db *gorm.DB, ownerId uint32, id uint32) error {
	return db.Where(&entity{OwnerId: ownerId, ID: id}).Delete(&entity{}).Error
}
