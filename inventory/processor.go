package inventory

import (
	"errors"
	"fmt"
	"time"

	"atlas-pantry/database"
	"atlas-pantry/ingredient"
	"atlas-pantry/inventory/history"
	"atlas-pantry/kafka/producer"
	"atlas-pantry/storage"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var missingFieldErr = errors.New("missing required field")
var invalidQuantityErr = errors.New("invalid quantity")
var staleVersionErr = errors.New("item was modified concurrently")

type SearchCriteria struct {
	Name         string
	Category     string
	LocationId   uint32
	ExpiryFilter string
}

func GetById(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, itemId uint32) (Model, error) {
	return func(ownerId uint32, itemId uint32) (Model, error) {
		return database.ModelProvider[Model, entity](db)(byIdProvider(ownerId, itemId), makeModel)()
	}
}

func GetForOwner(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32) ([]Model, error) {
	return func(ownerId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(byOwnerProvider(ownerId), makeModel)()
	}
}

func GetForLocation(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, locationId uint32) ([]Model, error) {
	return func(ownerId uint32, locationId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(byLocationProvider(ownerId, locationId), makeModel)()
	}
}

func Search(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, criteria SearchCriteria) ([]Model, error) {
	return func(ownerId uint32, criteria SearchCriteria) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(searchProvider(ownerId, criteria, time.Now()), makeModel)()
	}
}

// GetExpiring returns unexpired items whose expiry date falls within the
// given number of days, soonest first.
func GetExpiring(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, days int) ([]Model, error) {
	return func(ownerId uint32, days int) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(expiringWithinProvider(ownerId, days, time.Now()), makeModel)()
	}
}

func GetExpired(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32) ([]Model, error) {
	return func(ownerId uint32) ([]Model, error) {
		return Search(l, db)(ownerId, SearchCriteria{ExpiryFilter: ExpiryStatusExpired})
	}
}

// GetLowStock returns items at or below the threshold, the emptiest first.
func GetLowStock(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, threshold float64) ([]Model, error) {
	return func(ownerId uint32, threshold float64) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(lowStockProvider(ownerId, threshold), makeModel)()
	}
}

// Add records an acquisition. When an item of the same name already exists in
// the location the quantities merge, and a supplied expiry date or notes
// replace the stored ones.
func Add(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ep producer.Provider) func(ownerId uint32, locationId uint32, name string, category string, quantity float64, unit string, expiryDate *time.Time, notes string) (Model, error) {
	return func(ep producer.Provider) func(ownerId uint32, locationId uint32, name string, category string, quantity float64, unit string, expiryDate *time.Time, notes string) (Model, error) {
		return func(ownerId uint32, locationId uint32, name string, category string, quantity float64, unit string, expiryDate *time.Time, notes string) (Model, error) {
			if name == "" || category == "" || unit == "" || locationId == 0 {
				return Model{}, missingFieldErr
			}
			if quantity <= 0 {
				return Model{}, invalidQuantityErr
			}
			_, err := storage.GetById(l, db)(ownerId, locationId)
			if err != nil {
				return Model{}, err
			}

			var m Model
			var merged bool
			txErr := db.Transaction(func(tx *gorm.DB) error {
				existing, err := database.ModelProvider[Model, entity](tx)(byLocationAndNameProvider(ownerId, locationId, name), makeModel)()
				if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}

				historyNotes := notes
				if err == nil {
					merged = true
					updaters := []entityUpdater{setQuantity(existing.Quantity() + quantity)}
					if expiryDate != nil {
						updaters = append(updaters, setExpiryDate(expiryDate))
					}
					if notes != "" {
						updaters = append(updaters, setNotes(notes))
					}
					err = updateItem(tx, existing.Id(), existing.Version(), updaters...)
					if err != nil {
						return err
					}
					m, err = GetById(l, tx)(ownerId, existing.Id())
					if err != nil {
						return err
					}
					if historyNotes == "" {
						historyNotes = "Restocked item: " + m.Name()
					}
				} else {
					m, err = createItem(tx, ownerId, locationId, name, category, quantity, unit, expiryDate, time.Now(), notes)
					if err != nil {
						return err
					}
					if historyNotes == "" {
						historyNotes = "Added new item: " + m.Name()
					}
				}

				_, err = history.Record(l, tx)(ownerId, m.Id(), m.Name(), history.ActionAdd, quantity, uuid.New(), historyNotes)
				return err
			})
			if txErr != nil {
				return Model{}, txErr
			}

			if merged {
				err = ep(EnvEventTopicInventoryChanged)(itemUpdateProvider(ownerId, m.Id(), m.Name(), m.Quantity(), quantity))
			} else {
				err = ep(EnvEventTopicInventoryChanged)(itemAddProvider(ownerId, m.Id(), m.Name(), locationId, quantity))
			}
			if err != nil {
				l.WithError(err).Errorf("Unable to announce inventory change for item [%d].", m.Id())
			}
			return m, nil
		}
	}
}

// SetQuantity replaces the stored quantity and logs the delta, as a use when
// the quantity went down and an add otherwise.
func SetQuantity(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ep producer.Provider) func(ownerId uint32, itemId uint32, quantity float64, notes string) (Model, error) {
	return func(ep producer.Provider) func(ownerId uint32, itemId uint32, quantity float64, notes string) (Model, error) {
		return func(ownerId uint32, itemId uint32, quantity float64, notes string) (Model, error) {
			if quantity < 0 {
				return Model{}, invalidQuantityErr
			}

			var m Model
			var delta float64
			txErr := db.Transaction(func(tx *gorm.DB) error {
				existing, err := GetById(l, tx)(ownerId, itemId)
				if err != nil {
					return err
				}
				delta = quantity - existing.Quantity()

				err = updateItem(tx, existing.Id(), existing.Version(), setQuantity(quantity))
				if err != nil {
					return err
				}

				action := history.ActionAdd
				if delta < 0 {
					action = history.ActionUse
				}
				historyNotes := notes
				if historyNotes == "" {
					historyNotes = fmt.Sprintf("Quantity changed from %g to %g", existing.Quantity(), quantity)
				}
				_, err = history.Record(l, tx)(ownerId, existing.Id(), existing.Name(), action, delta, uuid.New(), historyNotes)
				if err != nil {
					return err
				}
				m, err = GetById(l, tx)(ownerId, itemId)
				return err
			})
			if txErr != nil {
				return Model{}, txErr
			}

			err := ep(EnvEventTopicInventoryChanged)(itemUpdateProvider(ownerId, m.Id(), m.Name(), m.Quantity(), delta))
			if err != nil {
				l.WithError(err).Errorf("Unable to announce inventory change for item [%d].", m.Id())
			}
			return m, nil
		}
	}
}

// Update adjusts item details. Zero values leave the stored ones untouched.
func Update(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ownerId uint32, itemId uint32, locationId uint32, category string, unit string, expiryDate *time.Time, notes string) (Model, error) {
	return func(ownerId uint32, itemId uint32, locationId uint32, category string, unit string, expiryDate *time.Time, notes string) (Model, error) {
		existing, err := GetById(l, db)(ownerId, itemId)
		if err != nil {
			return Model{}, err
		}

		updaters := make([]entityUpdater, 0)
		if locationId != 0 && locationId != existing.LocationId() {
			_, err = storage.GetById(l, db)(ownerId, locationId)
			if err != nil {
				return Model{}, err
			}
			updaters = append(updaters, setLocationId(locationId))
		}
		if category != "" {
			updaters = append(updaters, setCategory(category))
		}
		if unit != "" {
			updaters = append(updaters, setUnit(unit))
		}
		if expiryDate != nil {
			updaters = append(updaters, setExpiryDate(expiryDate))
		}
		if notes != "" {
			updaters = append(updaters, setNotes(notes))
		}

		if len(updaters) > 0 {
			err = updateItem(db, existing.Id(), existing.Version(), updaters...)
			if err != nil {
				return Model{}, err
			}
		}
		return GetById(l, db)(ownerId, itemId)
	}
}

// Delete removes an item, recording the discarded quantity first.
func Delete(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ep producer.Provider) func(ownerId uint32, itemId uint32) error {
	return func(ep producer.Provider) func(ownerId uint32, itemId uint32) error {
		return func(ownerId uint32, itemId uint32) error {
			var m Model
			txErr := db.Transaction(func(tx *gorm.DB) error {
				existing, err := GetById(l, tx)(ownerId, itemId)
				if err != nil {
					return err
				}
				m = existing

				_, err = history.Record(l, tx)(ownerId, existing.Id(), existing.Name(), history.ActionDelete, -existing.Quantity(), uuid.New(), "Deleted item: "+existing.Name())
				if err != nil {
					return err
				}
				return remove(tx, ownerId, itemId)
			})
			if txErr != nil {
				return txErr
			}

			err := ep(EnvEventTopicInventoryChanged)(itemRemoveProvider(ownerId, m.Id(), m.Name(), m.Quantity()))
			if err != nil {
				l.WithError(err).Errorf("Unable to announce inventory change for item [%d].", m.Id())
			}
			return nil
		}
	}
}

type Usage struct {
	Name     string
	Quantity float64
}

type UsageResult struct {
	ingredientName string
	itemId         uint32
	itemName       string
	requested      float64
	deducted       float64
	missing        float64
	satisfied      bool
}

func (r UsageResult) IngredientName() string {
	return r.ingredientName
}

func (r UsageResult) ItemId() uint32 {
	return r.itemId
}

func (r UsageResult) ItemName() string {
	return r.itemName
}

func (r UsageResult) Requested() float64 {
	return r.requested
}

func (r UsageResult) Deducted() float64 {
	return r.deducted
}

func (r UsageResult) Missing() float64 {
	return r.missing
}

func (r UsageResult) Satisfied() bool {
	return r.satisfied
}

// UseForRecipe deducts each ingredient from the first matching item holding
// enough of it. Each deduction commits on its own, so earlier ingredients
// stay consumed when a later one cannot be satisfied.
func UseForRecipe(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ep producer.Provider) func(ownerId uint32, recipeName string, usages []Usage) ([]UsageResult, error) {
	return func(ep producer.Provider) func(ownerId uint32, recipeName string, usages []Usage) ([]UsageResult, error) {
		return func(ownerId uint32, recipeName string, usages []Usage) ([]UsageResult, error) {
			transactionId := uuid.New()
			notes := "Used for recipe"
			if recipeName != "" {
				notes = "Used for recipe: " + recipeName
			}
			results := make([]UsageResult, 0)
			for _, u := range usages {
				r, err := useIngredient(l, db)(ep)(ownerId, u, transactionId, notes)
				if err != nil {
					return nil, err
				}
				results = append(results, r)
			}
			return results, nil
		}
	}
}

func useIngredient(l logrus.FieldLogger, db *gorm.DB) func(ep producer.Provider) func(ownerId uint32, u Usage, transactionId uuid.UUID, notes string) (UsageResult, error) {
	return func(ep producer.Provider) func(ownerId uint32, u Usage, transactionId uuid.UUID, notes string) (UsageResult, error) {
		return func(ownerId uint32, u Usage, transactionId uuid.UUID, notes string) (UsageResult, error) {
			var result UsageResult
			var m Model
			txErr := db.Transaction(func(tx *gorm.DB) error {
				candidates, err := GetForOwner(l, tx)(ownerId)
				if err != nil {
					return err
				}

				match, ok := ingredient.Match[Model](u.Name, candidates, ingredient.FilterMinimumQuantity[Model](u.Quantity))
				if !ok {
					var available float64
					for _, c := range candidates {
						if ingredient.Matches(u.Name, c.Name()) && c.Quantity() > available {
							available = c.Quantity()
						}
					}
					missing := u.Quantity - available
					if missing < 0 {
						missing = 0
					}
					result = UsageResult{ingredientName: u.Name, requested: u.Quantity, missing: missing}
					return nil
				}

				err = updateItem(tx, match.Id(), match.Version(), setQuantity(match.Quantity()-u.Quantity))
				if err != nil {
					return err
				}
				_, err = history.Record(l, tx)(ownerId, match.Id(), match.Name(), history.ActionUse, -u.Quantity, transactionId, notes)
				if err != nil {
					return err
				}
				m, err = GetById(l, tx)(ownerId, match.Id())
				if err != nil {
					return err
				}
				result = UsageResult{
					ingredientName: u.Name,
					itemId:         m.Id(),
					itemName:       m.Name(),
					requested:      u.Quantity,
					deducted:       u.Quantity,
					satisfied:      true,
				}
				return nil
			})
			if txErr != nil {
				return UsageResult{}, txErr
			}

			if result.Satisfied() {
				err := ep(EnvEventTopicInventoryChanged)(itemUpdateProvider(ownerId, m.Id(), m.Name(), m.Quantity(), -u.Quantity))
				if err != nil {
					l.WithError(err).Errorf("Unable to announce inventory change for item [%d].", m.Id())
				}
			}
			return result, nil
		}
	}
}

type Statistics struct {
	totalItems   int
	lowStock     int
	expiringSoon int
	expired      int
}

func (s Statistics) TotalItems() int {
	return s.totalItems
}

func (s Statistics) LowStock() int {
	return s.lowStock
}

func (s Statistics) ExpiringSoon() int {
	return s.expiringSoon
}

func (s Statistics) Expired() int {
	return s.expired
}

func GetStatistics(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32) (Statistics, error) {
	return func(ownerId uint32) (Statistics, error) {
		ms, err := GetForOwner(l, db)(ownerId)
		if err != nil {
			return Statistics{}, err
		}

		now := time.Now()
		s := Statistics{totalItems: len(ms)}
		for _, m := range ms {
			if m.LowStock() {
				s.lowStock++
			}
			switch m.ExpiryStatus(now) {
			case ExpiryStatusExpiringSoon:
				s.expiringSoon++
			case ExpiryStatusExpired:
				s.expired++
			}
		}
		return s, nil
	}
}

// CountForLocation, RelocateForLocation and CategoriesForLocation hang off
// the storage registry, which receives them as function values.

func CountForLocation(db *gorm.DB) func(ownerId uint32, locationId uint32) (int64, error) {
	return func(ownerId uint32, locationId uint32) (int64, error) {
		var count int64
		err := db.Model(&entity{}).Where(&entity{OwnerId: ownerId, LocationId: locationId}).Count(&count).Error
		return count, err
	}
}

func RelocateForLocation(db *gorm.DB) func(ownerId uint32, fromLocationId uint32, toLocationId uint32) (int64, error) {
	return func(ownerId uint32, fromLocationId uint32, toLocationId uint32) (int64, error) {
		return relocate(db, ownerId, fromLocationId, toLocationId)
	}
}

func CategoriesForLocation(db *gorm.DB) func(ownerId uint32, locationId uint32) ([]string, error) {
	return func(ownerId uint32, locationId uint32) ([]string, error) {
		var categories []string
		err := db.Model(&entity{}).
			Where("owner_id = ? AND location_id = ? AND category <> ''", ownerId, locationId).
			Distinct().
			Pluck("category", &categories).Error
		return categories, err
	}
}
