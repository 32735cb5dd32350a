package suggestion

import (
	"sort"
	"strings"
	"time"

	"atlas-pantry/ingredient"
	"atlas-pantry/inventory"
	"atlas-pantry/recipe"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	IngredientStatusSufficient   = "sufficient"
	IngredientStatusInsufficient = "insufficient"
	IngredientStatusMissing      = "missing"
)

type IngredientEvaluation struct {
	name              string
	requiredQuantity  float64
	availableQuantity float64
	status            string
	itemId            uint32
	itemName          string
	expiring          bool
}

func (e IngredientEvaluation) Name() string {
	return e.name
}

func (e IngredientEvaluation) RequiredQuantity() float64 {
	return e.requiredQuantity
}

func (e IngredientEvaluation) AvailableQuantity() float64 {
	return e.availableQuantity
}

func (e IngredientEvaluation) Status() string {
	return e.status
}

func (e IngredientEvaluation) ItemId() uint32 {
	return e.itemId
}

func (e IngredientEvaluation) ItemName() string {
	return e.itemName
}

func (e IngredientEvaluation) Expiring() bool {
	return e.expiring
}

func (e IngredientEvaluation) Shortfall() float64 {
	if e.status == IngredientStatusSufficient {
		return 0
	}
	return e.requiredQuantity - e.availableQuantity
}

type Evaluation struct {
	recipeName           string
	ingredients          []IngredientEvaluation
	missingCount         int
	completionPercentage float64
	priorityScore        float64
}

func (e Evaluation) RecipeName() string {
	return e.recipeName
}

func (e Evaluation) Ingredients() []IngredientEvaluation {
	return e.ingredients
}

func (e Evaluation) MissingCount() int {
	return e.missingCount
}

func (e Evaluation) CanCook() bool {
	return e.missingCount == 0
}

func (e Evaluation) CompletionPercentage() float64 {
	return e.completionPercentage
}

func (e Evaluation) PriorityScore() float64 {
	return e.priorityScore
}

// evaluate scores a recipe against the supplied items. Each ingredient binds
// to the first item whose name matches, sufficient or not, so one item can
// satisfy at most the ingredients it is named for. An insufficient ingredient
// counts on both sides of the completion ratio: it is available, with a
// shortfall, and it still blocks cooking.
func evaluate(r recipe.Model, items []inventory.Model, now time.Time) Evaluation {
	expiringTotal := 0
	for _, m := range items {
		if m.ExpiryStatus(now) == inventory.ExpiryStatusExpiringSoon {
			expiringTotal++
		}
	}

	e := Evaluation{recipeName: r.Name(), ingredients: make([]IngredientEvaluation, 0)}
	available := 0
	expiringUsed := 0
	for _, i := range r.Ingredients() {
		ie := IngredientEvaluation{name: i.Name(), requiredQuantity: i.Quantity(), status: IngredientStatusMissing}

		match, ok := ingredient.Match[inventory.Model](i.Name(), items)
		if ok {
			ie.itemId = match.Id()
			ie.itemName = match.Name()
			ie.availableQuantity = match.Quantity()
			ie.expiring = match.ExpiryStatus(now) == inventory.ExpiryStatusExpiringSoon
			if match.Quantity() >= i.Quantity() {
				ie.status = IngredientStatusSufficient
			} else {
				ie.status = IngredientStatusInsufficient
			}
		}

		if ie.status != IngredientStatusMissing {
			available++
			if ie.expiring {
				expiringUsed++
			}
		}
		if ie.status != IngredientStatusSufficient {
			e.missingCount++
		}
		e.ingredients = append(e.ingredients, ie)
	}

	if available+e.missingCount > 0 {
		e.completionPercentage = float64(available) / float64(available+e.missingCount) * 100
	}
	divisor := expiringTotal
	if divisor < 1 {
		divisor = 1
	}
	e.priorityScore = float64(expiringUsed) / float64(divisor)
	return e
}

func Evaluate(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, r recipe.Model) (Evaluation, error) {
	return func(ownerId uint32, r recipe.Model) (Evaluation, error) {
		items, err := inventory.GetForOwner(l, db)(ownerId)
		if err != nil {
			return Evaluation{}, err
		}
		return evaluate(r, items, time.Now()), nil
	}
}

type EvaluationFilter func(Evaluation) bool

func FilterMaxMissing(max int) EvaluationFilter {
	return func(e Evaluation) bool {
		return e.MissingCount() <= max
	}
}

// RankByCookability orders recipes by how close they are to cookable, the
// fully cookable ones first.
func RankByCookability(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, recipes []recipe.Model, filters ...EvaluationFilter) ([]Evaluation, error) {
	return func(ownerId uint32, recipes []recipe.Model, filters ...EvaluationFilter) ([]Evaluation, error) {
		items, err := inventory.GetForOwner(l, db)(ownerId)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		evaluations := make([]Evaluation, 0)
		for _, r := range recipes {
			e := evaluate(r, items, now)
			keep := true
			for _, f := range filters {
				if !f(e) {
					keep = false
					break
				}
			}
			if keep {
				evaluations = append(evaluations, e)
			}
		}
		sort.SliceStable(evaluations, func(i, j int) bool {
			if evaluations[i].MissingCount() != evaluations[j].MissingCount() {
				return evaluations[i].MissingCount() < evaluations[j].MissingCount()
			}
			return evaluations[i].CompletionPercentage() > evaluations[j].CompletionPercentage()
		})
		return evaluations, nil
	}
}

// RankByExpiryPriority orders recipes by how much expiring stock they would
// consume, cookable or not.
func RankByExpiryPriority(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, recipes []recipe.Model) ([]Evaluation, error) {
	return func(ownerId uint32, recipes []recipe.Model) ([]Evaluation, error) {
		items, err := inventory.GetForOwner(l, db)(ownerId)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		evaluations := make([]Evaluation, 0)
		for _, r := range recipes {
			evaluations = append(evaluations, evaluate(r, items, now))
		}
		sort.SliceStable(evaluations, func(i, j int) bool {
			return evaluations[i].PriorityScore() > evaluations[j].PriorityScore()
		})
		return evaluations, nil
	}
}

type ShoppingListEntry struct {
	name     string
	quantity float64
	unit     string
	recipes  []string
}

func (e ShoppingListEntry) Name() string {
	return e.name
}

func (e ShoppingListEntry) Quantity() float64 {
	return e.quantity
}

func (e ShoppingListEntry) Unit() string {
	return e.unit
}

func (e ShoppingListEntry) Recipes() []string {
	return e.recipes
}

// ShoppingList aggregates the shortfalls across recipes, keyed by the
// lowercased ingredient name. A shared ingredient lists every recipe that
// needs it and the largest single shortfall wins.
func ShoppingList(l logrus.FieldLogger, db *gorm.DB) func(ownerId uint32, recipes []recipe.Model) ([]ShoppingListEntry, error) {
	return func(ownerId uint32, recipes []recipe.Model) ([]ShoppingListEntry, error) {
		items, err := inventory.GetForOwner(l, db)(ownerId)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		units := make(map[string]string)
		entries := make(map[string]*ShoppingListEntry)
		order := make([]string, 0)
		for _, r := range recipes {
			e := evaluate(r, items, now)
			for idx, ie := range e.Ingredients() {
				if ie.Status() == IngredientStatusSufficient {
					continue
				}
				key := strings.ToLower(ie.Name())
				if _, ok := units[key]; !ok {
					units[key] = r.Ingredients()[idx].Unit()
				}
				entry, ok := entries[key]
				if !ok {
					entry = &ShoppingListEntry{name: ie.Name(), unit: units[key]}
					entries[key] = entry
					order = append(order, key)
				}
				if ie.Shortfall() > entry.quantity {
					entry.quantity = ie.Shortfall()
				}
				entry.recipes = append(entry.recipes, r.Name())
			}
		}

		results := make([]ShoppingListEntry, 0)
		for _, key := range order {
			results = append(results, *entries[key])
		}
		return results, nil
	}
}
