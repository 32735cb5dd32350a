package inventory

import (
	"strings"
	"time"

	"atlas-pantry/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func byIdProvider(ownerId uint32, itemId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{OwnerId: ownerId, ID: itemId})
	}
}

func byOwnerProvider(ownerId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where(&entity{OwnerId: ownerId}).Order("name").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func byLocationProvider(ownerId uint32, locationId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where(&entity{OwnerId: ownerId, LocationId: locationId}).Order("name").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func byLocationAndNameProvider(ownerId uint32, locationId uint32, name string) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{OwnerId: ownerId, LocationId: locationId, Name: name})
	}
}

func searchProvider(ownerId uint32, criteria SearchCriteria, now time.Time) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		query := db.Where("owner_id = ?", ownerId)
		if criteria.Name != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(criteria.Name)+"%")
		}
		if criteria.Category != "" {
			query = query.Where("category = ?", criteria.Category)
		}
		if criteria.LocationId != 0 {
			query = query.Where("location_id = ?", criteria.LocationId)
		}
		query = applyExpiryFilter(query, criteria.ExpiryFilter, now)

		var results []entity
		err := query.Order("name").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func expiringWithinProvider(ownerId uint32, days int, now time.Time) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		today := truncateToDay(now)
		horizon := today.AddDate(0, 0, days)
		var results []entity
		err := db.Where("owner_id = ? AND expiry_date IS NOT NULL AND expiry_date >= ? AND expiry_date <= ?", ownerId, today, horizon).
			Order("expiry_date").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func lowStockProvider(ownerId uint32, threshold float64) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.SliceProvider[entity] {
		var results []entity
		err := db.Where("owner_id = ? AND quantity <= ?", ownerId, threshold).
			Order("quantity").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func applyExpiryFilter(query *gorm.DB, filter string, now time.Time) *gorm.DB {
	today := truncateToDay(now)
	horizon := today.AddDate(0, 0, expiringSoonWindowDays)
	switch filter {
	case ExpiryStatusExpiringSoon:
		return query.Where("expiry_date IS NOT NULL AND expiry_date >= ? AND expiry_date <= ?", today, horizon)
	case ExpiryStatusExpired:
		return query.Where("expiry_date IS NOT NULL AND expiry_date < ?", today)
	case ExpiryStatusGood:
		return query.Where("expiry_date IS NULL OR expiry_date > ?", horizon)
	default:
		return query
	}
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:           e.ID,
		ownerId:      e.OwnerId,
		locationId:   e.LocationId,
		name:         e.Name,
		category:     e.Category,
		quantity:     e.Quantity,
		unit:         e.Unit,
		expiryDate:   e.ExpiryDate,
		purchaseDate: e.PurchaseDate,
		notes:        e.Notes,
		version:      e.Version,
		createdAt:    e.CreatedAt,
		updatedAt:    e.UpdatedAt,
	}, nil
}
