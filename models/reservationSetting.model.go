package models

import "gorm.io/gorm"

// ReservationSetting is the shop-level reservation policy. At most one row per
// shop; the unique index on ShopID backs the upsert race safety.
type ReservationSetting struct {
	gorm.Model
	ShopID uint `gorm:"not null;uniqueIndex" json:"shopId"`
	// Registration lead time, minutes or hours. At least one must be set.
	RegisterMin  *int `json:"registerMin,omitempty"`
	RegisterHr   *int `json:"registerHr,omitempty"`
	IsAutoAccept bool `gorm:"default:false" json:"isAuto"`
	// Required when IsAutoAccept: bookings auto-confirm up to this many.
	MaxCapacity *int `json:"maxCapacity,omitempty"`
}
