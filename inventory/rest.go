package inventory

import (
	"strconv"
	"time"
)

type RestModel struct {
	Id              uint32     `json:"-"`
	LocationId      uint32     `json:"locationId"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	PurchaseDate    time.Time  `json:"purchaseDate"`
	Notes           string     `json:"notes"`
	DaysUntilExpiry *int       `json:"daysUntilExpiry"`
	ExpiryStatus    string     `json:"expiryStatus"`
	LowStock        bool       `json:"lowStock"`
}

func (r RestModel) GetName() string {
	return "items"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(idStr string) error {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	now := time.Now()
	rm := RestModel{
		Id:           m.Id(),
		LocationId:   m.LocationId(),
		Name:         m.Name(),
		Category:     m.Category(),
		Quantity:     m.Quantity(),
		Unit:         m.Unit(),
		ExpiryDate:   m.ExpiryDate(),
		PurchaseDate: m.PurchaseDate(),
		Notes:        m.Notes(),
		ExpiryStatus: m.ExpiryStatus(now),
		LowStock:     m.LowStock(),
	}
	if days, ok := m.DaysUntilExpiry(now); ok {
		rm.DaysUntilExpiry = &days
	}
	return rm, nil
}

type QuantityRestModel struct {
	Id       uint32  `json:"-"`
	Quantity float64 `json:"quantity"`
	Notes    string  `json:"notes"`
}

func (r QuantityRestModel) GetName() string {
	return "item-quantities"
}

func (r QuantityRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *QuantityRestModel) SetID(idStr string) error {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

type StatisticsRestModel struct {
	Id           uint32 `json:"-"`
	TotalItems   int    `json:"totalItems"`
	LowStock     int    `json:"lowStock"`
	ExpiringSoon int    `json:"expiringSoon"`
	Expired      int    `json:"expired"`
}

func (r StatisticsRestModel) GetName() string {
	return "inventory-statistics"
}

func (r StatisticsRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func TransformStatistics(ownerId uint32, s Statistics) (StatisticsRestModel, error) {
	return StatisticsRestModel{
		Id:           ownerId,
		TotalItems:   s.TotalItems(),
		LowStock:     s.LowStock(),
		ExpiringSoon: s.ExpiringSoon(),
		Expired:      s.Expired(),
	}, nil
}

type UsageRestModel struct {
	Id          uint32                     `json:"-"`
	RecipeName  string                     `json:"recipeName"`
	Ingredients []UsageIngredientRestModel `json:"ingredients"`
}

type UsageIngredientRestModel struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

func (r UsageRestModel) GetName() string {
	return "inventory-usages"
}

func (r UsageRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *UsageRestModel) SetID(idStr string) error {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func ExtractUsages(r UsageRestModel) []Usage {
	usages := make([]Usage, 0)
	for _, i := range r.Ingredients {
		usages = append(usages, Usage{Name: i.Name, Quantity: i.Quantity})
	}
	return usages
}

type UsageResultRestModel struct {
	Id      uint32                      `json:"-"`
	Results []UsageResultEntryRestModel `json:"results"`
}

type UsageResultEntryRestModel struct {
	IngredientName string  `json:"ingredientName"`
	ItemId         uint32  `json:"itemId"`
	ItemName       string  `json:"itemName"`
	Requested      float64 `json:"requested"`
	Deducted       float64 `json:"deducted"`
	Missing        float64 `json:"missing"`
	Satisfied      bool    `json:"satisfied"`
}

func (r UsageResultRestModel) GetName() string {
	return "inventory-usage-results"
}

func (r UsageResultRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func TransformUsageResults(ownerId uint32, results []UsageResult) (UsageResultRestModel, error) {
	rm := UsageResultRestModel{Id: ownerId, Results: make([]UsageResultEntryRestModel, 0)}
	for _, r := range results {
		rm.Results = append(rm.Results, UsageResultEntryRestModel{
			IngredientName: r.IngredientName(),
			ItemId:         r.ItemId(),
			ItemName:       r.ItemName(),
			Requested:      r.Requested(),
			Deducted:       r.Deducted(),
			Missing:        r.Missing(),
			Satisfied:      r.Satisfied(),
		})
	}
	return rm, nil
}
