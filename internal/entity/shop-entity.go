package entity

import "time"

type ShopStatus string

const (
	ShopPending   ShopStatus = "PENDING"
	ShopActive    ShopStatus = "ACTIVE"
	ShopSuspended ShopStatus = "SUSPENDED"
	ShopRejected  ShopStatus = "REJECTED"
)

func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopPending, ShopActive, ShopSuspended, ShopRejected:
		return true
	}
	return false
}

// Shop gehört vollständig dem Backend und wird unverändert durchgereicht.
type Shop struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Description string     `json:"description,omitempty"`
	OwnerID     int64      `json:"ownerId"`
	Status      ShopStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}
