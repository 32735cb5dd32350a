package suggestion

type EvaluationRestModel struct {
	Id                   string                          `json:"-"`
	RecipeName           string                          `json:"recipeName"`
	CanCook              bool                            `json:"canCook"`
	MissingCount         int                             `json:"missingCount"`
	CompletionPercentage float64                         `json:"completionPercentage"`
	PriorityScore        float64                         `json:"priorityScore"`
	Ingredients          []IngredientEvaluationRestModel `json:"ingredients"`
}

type IngredientEvaluationRestModel struct {
	Name              string  `json:"name"`
	RequiredQuantity  float64 `json:"requiredQuantity"`
	AvailableQuantity float64 `json:"availableQuantity"`
	Status            string  `json:"status"`
	ItemId            uint32  `json:"itemId"`
	ItemName          string  `json:"itemName"`
	Expiring          bool    `json:"expiring"`
	Shortfall         float64 `json:"shortfall"`
}

func (r EvaluationRestModel) GetName() string {
	return "recipe-evaluations"
}

func (r EvaluationRestModel) GetID() string {
	return r.RecipeName
}

func Transform(e Evaluation) (EvaluationRestModel, error) {
	rm := EvaluationRestModel{
		RecipeName:           e.RecipeName(),
		CanCook:              e.CanCook(),
		MissingCount:         e.MissingCount(),
		CompletionPercentage: e.CompletionPercentage(),
		PriorityScore:        e.PriorityScore(),
		Ingredients:          make([]IngredientEvaluationRestModel, 0),
	}
	for _, ie := range e.Ingredients() {
		rm.Ingredients = append(rm.Ingredients, IngredientEvaluationRestModel{
			Name:              ie.Name(),
			RequiredQuantity:  ie.RequiredQuantity(),
			AvailableQuantity: ie.AvailableQuantity(),
			Status:            ie.Status(),
			ItemId:            ie.ItemId(),
			ItemName:          ie.ItemName(),
			Expiring:          ie.Expiring(),
			Shortfall:         ie.Shortfall(),
		})
	}
	return rm, nil
}

type ShoppingListEntryRestModel struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Recipes  []string `json:"recipes"`
}

type ShoppingListRestModel struct {
	Id      uint32                       `json:"-"`
	Entries []ShoppingListEntryRestModel `json:"entries"`
}

func (r ShoppingListRestModel) GetName() string {
	return "shopping-lists"
}

func (r ShoppingListRestModel) GetID() string {
	return "current"
}

func TransformShoppingList(ownerId uint32, entries []ShoppingListEntry) (ShoppingListRestModel, error) {
	rm := ShoppingListRestModel{Id: ownerId, Entries: make([]ShoppingListEntryRestModel, 0)}
	for _, e := range entries {
		rm.Entries = append(rm.Entries, ShoppingListEntryRestModel{
			Name:     e.Name(),
			Quantity: e.Quantity(),
			Unit:     e.Unit(),
			Recipes:  e.Recipes(),
		})
	}
	return rm, nil
}
