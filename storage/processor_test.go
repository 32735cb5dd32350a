package storage_test

import (
	"testing"

	"atlas-pantry/inventory"
	"atlas-pantry/inventory/history"
	"atlas-pantry/kafka/producer"
	"atlas-pantry/storage"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, storage.Migration, inventory.Migration, history.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testSpan() opentracing.Span {
	return mocktracer.New().StartSpan("test")
}

func testProducer(output *[]kafka.Message) producer.Provider {
	return func(token string) producer.MessageProducer {
		return func(provider model.Provider[[]kafka.Message]) error {
			res, err := provider()
			if err != nil {
				return err
			}
			for _, r := range res {
				*output = append(*output, r)
			}
			return nil
		}
	}
}

func TestBootstrapDefaultsIdempotent(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	created, err := storage.BootstrapDefaults(l, db, testSpan())(1)
	if err != nil {
		t.Fatalf("Failed to bootstrap defaults: %v", err)
	}
	if created != 5 {
		t.Fatalf("First bootstrap should create 5 locations, created %d", created)
	}

	created, err = storage.BootstrapDefaults(l, db, testSpan())(1)
	if err != nil {
		t.Fatalf("Failed to re-bootstrap: %v", err)
	}
	if created != 0 {
		t.Fatalf("Second bootstrap should create nothing, created %d", created)
	}

	ms, err := storage.GetForOwner(l, db)(1)
	if err != nil {
		t.Fatalf("Failed to get locations: %v", err)
	}
	if len(ms) != 5 {
		t.Fatalf("Expected 5 locations, got %d", len(ms))
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	_, err := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	_, err = storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err == nil {
		t.Fatalf("Duplicate name should be rejected.")
	}

	_, err = storage.Create(l, db, testSpan())(2, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Another owner may reuse the name: %v", err)
	}
}

func TestCreateRejectsMissingName(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	_, err := storage.Create(l, db, testSpan())(1, "", storage.TypePantry, "")
	if err == nil {
		t.Fatalf("Missing name should be rejected.")
	}
}

func TestDeleteRelocatesItems(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	var messages = make([]kafka.Message, 0)
	ep := testProducer(&messages)

	from, err := storage.Create(l, db, testSpan())(1, "Counter", storage.TypeCounter, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}
	to, err := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	m, err := inventory.Add(l, db, testSpan())(ep)(1, from.Id(), "Bananas", "Fruit", 6, "pcs", nil, "")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	err = storage.Delete(l, db, testSpan())(inventory.CountForLocation, inventory.RelocateForLocation)(1, from.Id())
	if err != nil {
		t.Fatalf("Failed to delete location: %v", err)
	}

	m, err = inventory.GetById(l, db)(1, m.Id())
	if err != nil {
		t.Fatalf("Failed to reread item: %v", err)
	}
	if m.LocationId() != to.Id() {
		t.Fatalf("Item should move to location %d, is in %d", to.Id(), m.LocationId())
	}

	_, err = storage.GetById(l, db)(1, from.Id())
	if err == nil {
		t.Fatalf("Deleted location should be gone.")
	}
}

func TestDeleteLastLocationWithItems(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	var messages = make([]kafka.Message, 0)
	ep := testProducer(&messages)

	loc, err := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	_, err = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Bananas", "Fruit", 6, "pcs", nil, "")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	err = storage.Delete(l, db, testSpan())(inventory.CountForLocation, inventory.RelocateForLocation)(1, loc.Id())
	if err == nil {
		t.Fatalf("Deleting the only stocked location should fail.")
	}

	_, err = storage.GetById(l, db)(1, loc.Id())
	if err != nil {
		t.Fatalf("Location should survive the failed delete: %v", err)
	}
}

func TestDeleteEmptyLocation(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	loc, err := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	err = storage.Delete(l, db, testSpan())(inventory.CountForLocation, inventory.RelocateForLocation)(1, loc.Id())
	if err != nil {
		t.Fatalf("Failed to delete empty location: %v", err)
	}
}

func TestItemCountDecorator(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	var messages = make([]kafka.Message, 0)
	ep := testProducer(&messages)

	loc, err := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}
	_, _ = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Bananas", "Fruit", 6, "pcs", nil, "")
	_, _ = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Apples", "Fruit", 4, "pcs", nil, "")

	ms, err := storage.GetForOwner(l, db)(1, storage.ItemCountDecorator(l, db, inventory.CountForLocation))
	if err != nil {
		t.Fatalf("Failed to get locations: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("Expected 1 location, got %d", len(ms))
	}
	if ms[0].ItemCount() != 2 {
		t.Fatalf("Item count should be 2, was %d", ms[0].ItemCount())
	}
}

func TestStatistics(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	var messages = make([]kafka.Message, 0)
	ep := testProducer(&messages)

	loc, err := storage.Create(l, db, testSpan())(1, "Fridge", storage.TypeFridge, "")
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}
	_, _ = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Milk", "Dairy", 1, "l", nil, "")
	_, _ = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Cheese", "Dairy", 1, "kg", nil, "")
	_, _ = inventory.Add(l, db, testSpan())(ep)(1, loc.Id(), "Ham", "Meat", 1, "kg", nil, "")

	s, err := storage.GetStatistics(l, db)(inventory.CountForLocation, inventory.CategoriesForLocation)(1)
	if err != nil {
		t.Fatalf("Failed to compute statistics: %v", err)
	}
	if s.TotalLocations() != 1 {
		t.Fatalf("Total locations should be 1, was %d", s.TotalLocations())
	}
	if s.Locations()[0].ItemCount() != 3 {
		t.Fatalf("Item count should be 3, was %d", s.Locations()[0].ItemCount())
	}
	if len(s.Locations()[0].Categories()) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(s.Locations()[0].Categories()))
	}
}
