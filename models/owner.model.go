package models

import (
	"time"

	"gorm.io/gorm"
)

// ShopOwner is the account that owns one or more shops.
type ShopOwner struct {
	gorm.Model
	Name             string     `gorm:"default:''"`
	Email            string     `gorm:"unique;not null"`
	Mobile           string     `gorm:"size:15;uniqueIndex"`
	Password         string     `gorm:"not null"`
	IsMobileVerified bool       `gorm:"default:false"`
	LastLogin        *time.Time `gorm:"default:NULL"`
	IsDeleted        bool       `gorm:"default:false"`
}
