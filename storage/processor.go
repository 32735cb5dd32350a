package storage

import (
	"errors"

	"atlas-pantry/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var missingFieldErr = errors.New("missing required field")
var duplicateNameErr = errors.New("location name already in use")
var noDestinationErr = errors.New("no destination location for items")

// ItemCounter reports how many inventory items reference a location.
type ItemCounter func(db *gorm.DB) func(ownerId uint32, locationId uint32) (int64, error)

// ItemRelocator moves every item in one location to another, returning the number moved.
type ItemRelocator func(db *gorm.DB) func(ownerId uint32, fromLocationId uint32, toLocationId uint32) (int64, error)

// CategoryProvider lists the distinct item categories present in a location.
type CategoryProvider func(db *gorm.DB) func(ownerId uint32, locationId uint32) ([]string, error)

func byIdProvider(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, locationId uint32) model.Provider[Model] {
	return func(ownerId uint32, locationId uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(ownerId, locationId), makeModel)
	}
}

func GetById(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, locationId uint32) (Model, error) {
	return func(ownerId uint32, locationId uint32) (Model, error) {
		return byIdProvider(l, db)(ownerId, locationId)()
	}
}

func byOwnerProvider(_ logrus.FieldLogger, db *gorm.DB) func(ownerId uint32) model.SliceProvider[Model] {
	return func(ownerId uint32) model.SliceProvider[Model] {
		return database.ModelSliceProvider[Model, entity](db)(getForOwner(ownerId), makeModel)
	}
}

func GetForOwner(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(ownerId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.ApplyDecoratorsSlice(byOwnerProvider(l, db)(ownerId), decorators...)()
	}
}

// ItemCountDecorator annotates a location with its live item count.
func ItemCountDecorator(l logrus.FieldLogger, db *gorm.DB, counter ItemCounter) model.Decorator[Model] {
	return func(m Model) Model {
		count, err := counter(db)(m.OwnerId(), m.Id())
		if err != nil {
			l.WithError(err).Errorf("Unable to count items in location [%d].", m.Id())
			return m
		}
		return m.SetItemCount(count)
	}
}

func Create(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ownerId uint32, name string, locationType string, description string) (Model, error) {
	return func(ownerId uint32, name string, locationType string, description string) (Model, error) {
		if name == "" || locationType == "" {
			return Model{}, missingFieldErr
		}

		_, err := getByName(ownerId, name)(db)()
		if err == nil {
			return Model{}, duplicateNameErr
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Model{}, err
		}

		m, err := create(db, ownerId, name, locationType, description)
		if err != nil {
			l.WithError(err).Errorf("Unable to create storage location [%s] for owner [%d].", name, ownerId)
			return Model{}, err
		}
		l.Debugf("Created storage location [%d] for owner [%d].", m.Id(), ownerId)
		return m, nil
	}
}

func Update(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(ownerId uint32, locationId uint32, name string, locationType string, description string) (Model, error) {
	return func(ownerId uint32, locationId uint32, name string, locationType string, description string) (Model, error) {
		m, err := GetById(l, db)(ownerId, locationId)
		if err != nil {
			return Model{}, err
		}

		var updaters []entityUpdater
		if name != "" && name != m.Name() {
			_, err = getByName(ownerId, name)(db)()
			if err == nil {
				return Model{}, duplicateNameErr
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return Model{}, err
			}
			updaters = append(updaters, setName(name))
		}
		if locationType != "" {
			updaters = append(updaters, setLocationType(locationType))
		}
		if description != "" {
			updaters = append(updaters, setDescription(description))
		}

		err = update(db, locationId, updaters...)
		if err != nil {
			l.WithError(err).Errorf("Unable to update storage location [%d] for owner [%d].", locationId, ownerId)
			return Model{}, err
		}
		return GetById(l, db)(ownerId, locationId)
	}
}

// Delete removes a location. Items stored there are moved to the first other
// location the owner has; when none exists the deletion is rejected rather
// than orphaning the items.
func Delete(l logrus.FieldLogger, db *gorm.DB, _ opentracing.Span) func(counter ItemCounter, relocator ItemRelocator) func(ownerId uint32, locationId uint32) error {
	return func(counter ItemCounter, relocator ItemRelocator) func(ownerId uint32, locationId uint32) error {
		return func(ownerId uint32, locationId uint32) error {
			_, err := GetById(l, db)(ownerId, locationId)
			if err != nil {
				return err
			}

			txError := db.Transaction(func(tx *gorm.DB) error {
				count, err := counter(tx)(ownerId, locationId)
				if err != nil {
					return err
				}
				if count > 0 {
					dest, err := getOtherForOwner(ownerId, locationId)(tx)()
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return noDestinationErr
					}
					if err != nil {
						return err
					}
					moved, err := relocator(tx)(ownerId, locationId, dest.ID)
					if err != nil {
						return err
					}
					l.Debugf("Moved [%d] items from location [%d] to location [%d] for owner [%d].", moved, locationId, dest.ID, ownerId)
				}
				return remove(tx, ownerId, locationId)
			})
			if txError != nil && !errors.Is(txError, noDestinationErr) {
				l.WithError(txError).Errorf("Unable to delete storage location [%d] for owner [%d].", locationId, ownerId)
			}
			return txError
		}
	}
}

// BootstrapDefaults creates the canonical location set for an owner, skipping
// names that already exist. Safe to call repeatedly.
func BootstrapDefaults(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span) func(ownerId uint32) (int, error) {
	return func(ownerId uint32) (int, error) {
		defaults, err := defaultLocations()
		if err != nil {
			return 0, err
		}

		created := 0
		for _, d := range defaults {
			_, err = getByName(ownerId, d.Name)(db)()
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return created, err
			}
			_, err = Create(l, db, span)(ownerId, d.Name, d.Type, d.Description)
			if err != nil {
				return created, err
			}
			created++
		}
		l.Debugf("Bootstrapped [%d] default storage locations for owner [%d].", created, ownerId)
		return created, nil
	}
}

type Statistics struct {
	totalLocations int
	locations      []LocationStatistics
}

func (s Statistics) TotalLocations() int {
	return s.totalLocations
}

func (s Statistics) Locations() []LocationStatistics {
	return s.locations
}

type LocationStatistics struct {
	id           uint32
	name         string
	locationType string
	itemCount    int64
	categories   []string
}

func (s LocationStatistics) Id() uint32 {
	return s.id
}

func (s LocationStatistics) Name() string {
	return s.name
}

func (s LocationStatistics) LocationType() string {
	return s.locationType
}

func (s LocationStatistics) ItemCount() int64 {
	return s.itemCount
}

func (s LocationStatistics) Categories() []string {
	return s.categories
}

func GetStatistics(l logrus.FieldLogger, db *gorm.DB) func(counter ItemCounter, categories CategoryProvider) func(ownerId uint32) (Statistics, error) {
	return func(counter ItemCounter, categories CategoryProvider) func(ownerId uint32) (Statistics, error) {
		return func(ownerId uint32) (Statistics, error) {
			ms, err := GetForOwner(l, db)(ownerId)
			if err != nil {
				return Statistics{}, err
			}

			stats := Statistics{totalLocations: len(ms)}
			for _, m := range ms {
				count, err := counter(db)(ownerId, m.Id())
				if err != nil {
					return Statistics{}, err
				}
				cs, err := categories(db)(ownerId, m.Id())
				if err != nil {
					return Statistics{}, err
				}
				stats.locations = append(stats.locations, LocationStatistics{
					id:           m.Id(),
					name:         m.Name(),
					locationType: m.LocationType(),
					itemCount:    count,
					categories:   cs,
				})
			}
			return stats, nil
		}
	}
}
