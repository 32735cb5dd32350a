package history

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionAdd    = "add"
	ActionUse    = "use"
	ActionExpire = "expire"
	ActionDelete = "delete"
)

type Model struct {
	id             uint32
	ownerId        uint32
	itemId         uint32
	itemName       string
	action         string
	quantityChange float64
	transactionId  uuid.UUID
	notes          string
	createdAt      time.Time
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) OwnerId() uint32 {
	return m.ownerId
}

func (m Model) ItemId() uint32 {
	return m.itemId
}

func (m Model) ItemName() string {
	return m.itemName
}

func (m Model) Action() string {
	return m.action
}

func (m Model) QuantityChange() float64 {
	return m.quantityChange
}

func (m Model) TransactionId() uuid.UUID {
	return m.transactionId
}

func (m Model) Notes() string {
	return m.notes
}

func (m Model) CreatedAt() time.Time {
	return m.createdAt
}
