package recipe

type Model struct {
	name        string
	ingredients []IngredientModel
}

func NewModel(name string, ingredients []IngredientModel) Model {
	return Model{name: name, ingredients: ingredients}
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Ingredients() []IngredientModel {
	return m.ingredients
}

type IngredientModel struct {
	name     string
	quantity float64
	unit     string
}

func NewIngredientModel(name string, quantity float64, unit string) IngredientModel {
	return IngredientModel{name: name, quantity: quantity, unit: unit}
}

func (m IngredientModel) Name() string {
	return m.name
}

func (m IngredientModel) Quantity() float64 {
	return m.quantity
}

func (m IngredientModel) Unit() string {
	return m.unit
}
