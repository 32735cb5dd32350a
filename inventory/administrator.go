package inventory

import (
	"time"

	"gorm.io/gorm"
)

func createItem(db *gorm.DB, ownerId uint32, locationId uint32, name string, category string, quantity float64, unit string, expiryDate *time.Time, purchaseDate time.Time, notes string) (Model, error) {
	e := &entity{
		OwnerId:      ownerId,
		LocationId:   locationId,
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		Unit:         unit,
		ExpiryDate:   expiryDate,
		PurchaseDate: purchaseDate,
		Notes:        notes,
		Version:      1,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

type entityUpdater func(columns map[string]interface{})

func setQuantity(quantity float64) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["quantity"] = quantity
	}
}

func setLocationId(locationId uint32) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["location_id"] = locationId
	}
}

func setCategory(category string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["category"] = category
	}
}

func setUnit(unit string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["unit"] = unit
	}
}

func setExpiryDate(expiryDate *time.Time) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["expiry_date"] = expiryDate
	}
}

func setNotes(notes string) entityUpdater {
	return func(columns map[string]interface{}) {
		columns["notes"] = notes
	}
}

// updateItem applies the accumulated column changes, guarded by the version
// the caller read. A stale version leaves the row untouched.
func updateItem(db *gorm.DB, id uint32, version uint32, updaters ...entityUpdater) error {
	columns := make(map[string]interface{})
	for _, u := range updaters {
		u(columns)
	}
	if len(columns) == 0 {
		return nil
	}
	columns["version"] = version + 1

	result := db.Model(&entity{}).Where("id = ? AND version = ?", id, version).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleVersionErr
	}
	return nil
}

func remove(db *gorm.DB, ownerId uint32, id uint32) error {
	return db.Where(&entity{OwnerId: ownerId, ID: id}).Delete(&entity{}).Error
}

func relocate(db *gorm.DB, ownerId uint32, fromLocationId uint32, toLocationId uint32) (int64, error) {
	result := db.Model(&entity{}).
		Where("owner_id = ? AND location_id = ?", ownerId, fromLocationId).
		Updates(map[string]interface{}{"location_id": toLocationId})
	return result.RowsAffected, result.Error
}
