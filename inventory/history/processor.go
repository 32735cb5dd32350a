package history

import (
	"atlas-pantry/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Record writes a transaction row. Callers pass the transaction handle when
// the row must commit alongside a ledger mutation.
func Record(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, itemId uint32, itemName string, action string, quantityChange float64, transactionId uuid.UUID, notes string) (Model, error) {
	return func(ownerId uint32, itemId uint32, itemName string, action string, quantityChange float64, transactionId uuid.UUID, notes string) (Model, error) {
		return create(db, ownerId, itemId, itemName, action, quantityChange, transactionId, notes)
	}
}

func GetForOwner(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32) ([]Model, error) {
	return func(ownerId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForOwner(ownerId), makeModel)()
	}
}

func GetForItem(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, itemId uint32) ([]Model, error) {
	return func(ownerId uint32, itemId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForItem(ownerId, itemId), makeModel)()
	}
}
