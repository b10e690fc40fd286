package models

import "gorm.io/gorm"

type Shop struct {
	gorm.Model
	OwnerID   uint   `gorm:"not null;index" json:"ownerId"`
	Name      string `gorm:"not null" json:"name"`
	Phone     string `gorm:"default:''" json:"phone"`
	Address   string `gorm:"default:''" json:"address"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
