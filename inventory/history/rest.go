package history

import (
	"strconv"
	"time"
)

type RestModel struct {
	Id             uint32    `json:"-"`
	ItemId         uint32    `json:"itemId"`
	ItemName       string    `json:"itemName"`
	Action         string    `json:"action"`
	QuantityChange float64   `json:"quantityChange"`
	TransactionId  string    `json:"transactionId"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r RestModel) GetName() string {
	return "inventory-transactions"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:             m.Id(),
		ItemId:         m.ItemId(),
		ItemName:       m.ItemName(),
		Action:         m.Action(),
		QuantityChange: m.QuantityChange(),
		TransactionId:  m.TransactionId().String(),
		Notes:          m.Notes(),
		CreatedAt:      m.CreatedAt(),
	}, nil
}
