package models

import "gorm.io/gorm"

type Menu struct {
	gorm.Model
	ShopID      uint   `gorm:"not null;index" json:"shopId"`
	MenuName    string `gorm:"not null" json:"menuName"`
	Price       int    `gorm:"default:0" json:"price"`
	Description string `gorm:"type:text" json:"description"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
