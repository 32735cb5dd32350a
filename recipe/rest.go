package recipe

type RestModel struct {
	Id          string                `json:"-"`
	Name        string                `json:"name"`
	Ingredients []IngredientRestModel `json:"ingredients"`
}

type IngredientRestModel struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func (r RestModel) GetName() string {
	return "recipes"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(id string) error {
	r.Id = id
	return nil
}

func Extract(r RestModel) (Model, error) {
	ingredients := make([]IngredientModel, 0)
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, NewIngredientModel(i.Name, i.Quantity, i.Unit))
	}
	return NewModel(r.Name, ingredients), nil
}

func ExtractAll(rs []RestModel) ([]Model, error) {
	ms := make([]Model, 0)
	for _, r := range rs {
		m, err := Extract(r)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}
