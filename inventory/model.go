package inventory

import (
	"time"
)

const (
	ExpiryStatusGood         = "good"
	ExpiryStatusExpiringSoon = "expiring_soon"
	ExpiryStatusExpired      = "expired"

	expiringSoonWindowDays = 7
	lowStockThreshold      = 1.0
)

type Model struct {
	id           uint32
	ownerId      uint32
	locationId   uint32
	name         string
	category     string
	quantity     float64
	unit         string
	expiryDate   *time.Time
	purchaseDate time.Time
	notes        string
	version      uint32
	createdAt    time.Time
	updatedAt    time.Time
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) OwnerId() uint32 {
	return m.ownerId
}

func (m Model) LocationId() uint32 {
	return m.locationId
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Category() string {
	return m.category
}

func (m Model) Quantity() float64 {
	return m.quantity
}

func (m Model) Unit() string {
	return m.unit
}

func (m Model) ExpiryDate() *time.Time {
	return m.expiryDate
}

func (m Model) PurchaseDate() time.Time {
	return m.purchaseDate
}

func (m Model) Notes() string {
	return m.notes
}

func (m Model) Version() uint32 {
	return m.version
}

func (m Model) CreatedAt() time.Time {
	return m.createdAt
}

func (m Model) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m Model) LowStock() bool {
	return m.quantity <= lowStockThreshold
}

// DaysUntilExpiry returns the whole days remaining until the expiry date,
// negative once expired. The second result is false for items without one.
func (m Model) DaysUntilExpiry(now time.Time) (int, bool) {
	if m.expiryDate == nil {
		return 0, false
	}
	days := int(truncateToDay(*m.expiryDate).Sub(truncateToDay(now)).Hours() / 24)
	return days, true
}

func (m Model) ExpiryStatus(now time.Time) string {
	days, ok := m.DaysUntilExpiry(now)
	if !ok {
		return ExpiryStatusGood
	}
	if days < 0 {
		return ExpiryStatusExpired
	}
	if days <= expiringSoonWindowDays {
		return ExpiryStatusExpiringSoon
	}
	return ExpiryStatusGood
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
