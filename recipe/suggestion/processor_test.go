package suggestion_test

import (
	"testing"
	"time"

	"atlas-pantry/inventory"
	"atlas-pantry/inventory/history"
	"atlas-pantry/kafka/producer"
	"atlas-pantry/recipe"
	"atlas-pantry/recipe/suggestion"
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

func stock(t *testing.T, l logrus.FieldLogger, db *gorm.DB, locationId uint32, name string, quantity float64, expiry *time.Time) {
	var messages = make([]kafka.Message, 0)
	_, err := inventory.Add(l, db, testSpan())(testProducer(&messages))(1, locationId, name, "Groceries", quantity, "ea", expiry, "")
	if err != nil {
		t.Fatalf("Failed to stock %s: %v", name, err)
	}
}

func pancakes() recipe.Model {
	return recipe.NewModel("Pancakes", []recipe.IngredientModel{
		recipe.NewIngredientModel("flour", 2, "cups"),
		recipe.NewIngredientModel("milk", 1, "cups"),
		recipe.NewIngredientModel("eggs", 2, ""),
	})
}

func TestEvaluateFullyCookable(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")

	stock(t, l, db, loc.Id(), "Flour", 5, nil)
	stock(t, l, db, loc.Id(), "Milk", 2, nil)
	stock(t, l, db, loc.Id(), "Eggs", 12, nil)

	e, err := suggestion.Evaluate(l, db)(1, pancakes())
	if err != nil {
		t.Fatalf("Failed to evaluate: %v", err)
	}
	if !e.CanCook() {
		t.Fatalf("Pancakes should be cookable.")
	}
	if e.MissingCount() != 0 {
		t.Fatalf("Missing count should be 0, was %d", e.MissingCount())
	}
	if e.CompletionPercentage() != 100 {
		t.Fatalf("Completion should be 100, was %f", e.CompletionPercentage())
	}
}

func TestEvaluateNothingAvailable(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	e, err := suggestion.Evaluate(l, db)(1, pancakes())
	if err != nil {
		t.Fatalf("Failed to evaluate: %v", err)
	}
	if e.CanCook() {
		t.Fatalf("Pancakes should not be cookable with an empty pantry.")
	}
	if e.MissingCount() != 3 {
		t.Fatalf("Missing count should be 3, was %d", e.MissingCount())
	}
	if e.CompletionPercentage() != 0 {
		t.Fatalf("Completion should be 0, was %f", e.CompletionPercentage())
	}
}

func TestEvaluateInsufficientIngredient(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")

	stock(t, l, db, loc.Id(), "Flour", 1, nil)
	stock(t, l, db, loc.Id(), "Milk", 2, nil)
	stock(t, l, db, loc.Id(), "Eggs", 12, nil)

	e, err := suggestion.Evaluate(l, db)(1, pancakes())
	if err != nil {
		t.Fatalf("Failed to evaluate: %v", err)
	}
	if e.CanCook() {
		t.Fatalf("Short flour should block cooking.")
	}
	if e.MissingCount() != 1 {
		t.Fatalf("Missing count should be 1, was %d", e.MissingCount())
	}
	if e.CompletionPercentage() != 75 {
		t.Fatalf("Insufficient flour still counts as available, completion should be 75, was %f", e.CompletionPercentage())
	}

	var flour suggestion.IngredientEvaluation
	found := false
	for _, ie := range e.Ingredients() {
		if ie.Name() == "flour" {
			flour = ie
			found = true
		}
	}
	if !found {
		t.Fatalf("Expected a flour evaluation.")
	}
	if flour.Status() != suggestion.IngredientStatusInsufficient {
		t.Fatalf("Flour status should be insufficient, was %s", flour.Status())
	}
	if flour.Shortfall() != 1 {
		t.Fatalf("Flour shortfall should be 1, was %f", flour.Shortfall())
	}
}

func TestEvaluateBidirectionalMatch(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")

	stock(t, l, db, loc.Id(), "Chicken Broth (Low Sodium)", 32, nil)

	r := recipe.NewModel("Soup", []recipe.IngredientModel{
		recipe.NewIngredientModel("chicken broth", 16, "oz"),
	})

	e, err := suggestion.Evaluate(l, db)(1, r)
	if err != nil {
		t.Fatalf("Failed to evaluate: %v", err)
	}
	if !e.CanCook() {
		t.Fatalf("Substring match should make the soup cookable.")
	}
	if e.Ingredients()[0].ItemName() != "Chicken Broth (Low Sodium)" {
		t.Fatalf("Bound item should be the broth, was %s", e.Ingredients()[0].ItemName())
	}
}

func TestRankByCookability(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")

	stock(t, l, db, loc.Id(), "Flour", 5, nil)
	stock(t, l, db, loc.Id(), "Milk", 2, nil)
	stock(t, l, db, loc.Id(), "Eggs", 12, nil)

	toast := recipe.NewModel("French Toast", []recipe.IngredientModel{
		recipe.NewIngredientModel("bread", 4, "slices"),
		recipe.NewIngredientModel("eggs", 2, ""),
		recipe.NewIngredientModel("milk", 0.5, "cups"),
	})
	omelette := recipe.NewModel("Omelette", []recipe.IngredientModel{
		recipe.NewIngredientModel("eggs", 3, ""),
	})

	es, err := suggestion.RankByCookability(l, db)(1, []recipe.Model{toast, pancakes(), omelette})
	if err != nil {
		t.Fatalf("Failed to rank: %v", err)
	}
	if len(es) != 3 {
		t.Fatalf("Expected 3 evaluations, got %d", len(es))
	}
	if es[0].MissingCount() != 0 || es[1].MissingCount() != 0 {
		t.Fatalf("Cookable recipes should rank first.")
	}
	if es[2].RecipeName() != "French Toast" {
		t.Fatalf("French Toast should rank last, was %s", es[2].RecipeName())
	}
}

func TestRankByExpiryPriority(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Fridge", storage.TypeFridge, "")

	soon := time.Now().AddDate(0, 0, 2)
	stock(t, l, db, loc.Id(), "Milk", 2, &soon)
	stock(t, l, db, loc.Id(), "Eggs", 12, nil)
	stock(t, l, db, loc.Id(), "Rice", 5, nil)

	cereal := recipe.NewModel("Cereal", []recipe.IngredientModel{
		recipe.NewIngredientModel("milk", 1, "cups"),
	})
	friedRice := recipe.NewModel("Fried Rice", []recipe.IngredientModel{
		recipe.NewIngredientModel("rice", 2, "cups"),
		recipe.NewIngredientModel("eggs", 2, ""),
	})

	es, err := suggestion.RankByExpiryPriority(l, db)(1, []recipe.Model{friedRice, cereal})
	if err != nil {
		t.Fatalf("Failed to rank: %v", err)
	}
	if len(es) != 2 {
		t.Fatalf("Expected 2 cookable recipes, got %d", len(es))
	}
	if es[0].RecipeName() != "Cereal" {
		t.Fatalf("Cereal uses the expiring milk and should rank first, was %s", es[0].RecipeName())
	}
	if es[0].PriorityScore() <= es[1].PriorityScore() {
		t.Fatalf("Cereal should score higher than Fried Rice.")
	}
}

func TestRankByExpiryPriorityKeepsUncookable(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Fridge", storage.TypeFridge, "")

	soon := time.Now().AddDate(0, 0, 2)
	stock(t, l, db, loc.Id(), "Milk", 2, &soon)

	cereal := recipe.NewModel("Cereal", []recipe.IngredientModel{
		recipe.NewIngredientModel("milk", 1, "cups"),
	})
	omelette := recipe.NewModel("Omelette", []recipe.IngredientModel{
		recipe.NewIngredientModel("eggs", 3, ""),
	})

	es, err := suggestion.RankByExpiryPriority(l, db)(1, []recipe.Model{omelette, cereal})
	if err != nil {
		t.Fatalf("Failed to rank: %v", err)
	}
	if len(es) != 2 {
		t.Fatalf("Every supplied recipe should be ranked, got %d", len(es))
	}
	if es[0].RecipeName() != "Cereal" {
		t.Fatalf("Cereal uses the expiring milk and should rank first, was %s", es[0].RecipeName())
	}
	if es[1].CanCook() {
		t.Fatalf("The omelette has no eggs in stock and should report uncookable.")
	}
}

func TestShoppingList(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	loc, _ := storage.Create(l, db, testSpan())(1, "Pantry", storage.TypePantry, "")

	stock(t, l, db, loc.Id(), "Flour", 1, nil)

	waffles := recipe.NewModel("Waffles", []recipe.IngredientModel{
		recipe.NewIngredientModel("flour", 3, "cups"),
		recipe.NewIngredientModel("milk", 1, "cups"),
	})

	entries, err := suggestion.ShoppingList(l, db)(1, []recipe.Model{pancakes(), waffles})
	if err != nil {
		t.Fatalf("Failed to build shopping list: %v", err)
	}

	byName := make(map[string]suggestion.ShoppingListEntry)
	for _, e := range entries {
		byName[e.Name()] = e
	}

	flour, ok := byName["flour"]
	if !ok {
		t.Fatalf("Flour should be on the list.")
	}
	if flour.Quantity() != 2 {
		t.Fatalf("Flour shortfall should be the largest single one, 2, was %f", flour.Quantity())
	}
	if len(flour.Recipes()) != 2 {
		t.Fatalf("Flour should be needed by both recipes, got %d", len(flour.Recipes()))
	}

	if _, ok := byName["eggs"]; !ok {
		t.Fatalf("Eggs should be on the list.")
	}
}
