package storage

import "time"

const (
	TypeFridge    = "fridge"
	TypeFreezer   = "freezer"
	TypePantry    = "pantry"
	TypeSpiceRack = "spice_rack"
	TypeCounter   = "counter"
)

type Model struct {
	id           uint32
	ownerId      uint32
	name         string
	locationType string
	description  string
	itemCount    int64
	createdAt    time.Time
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) OwnerId() uint32 {
	return m.ownerId
}

func (m Model) Name() string {
	return m.name
}

func (m Model) LocationType() string {
	return m.locationType
}

func (m Model) Description() string {
	return m.description
}

func (m Model) ItemCount() int64 {
	return m.itemCount
}

func (m Model) CreatedAt() time.Time {
	return m.createdAt
}

func (m Model) SetItemCount(count int64) Model {
	m.itemCount = count
	return m
}
