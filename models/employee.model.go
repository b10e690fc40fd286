package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	ShopID    uint   `gorm:"not null;index" json:"shopId"`
	Name      string `gorm:"not null" json:"name"`
	SelfIntro string `gorm:"type:text" json:"selfIntro"`
	// SchedulingCycle is the number of days a calendar view spans for this
	// employee, counted from today inclusive.
	SchedulingCycle int  `gorm:"default:14" json:"schedulingCycle"`
	IsDeleted       bool `gorm:"default:false" json:"-"`
}

// EmployeeMenu links an employee to a menu the employee can perform.
type EmployeeMenu struct {
	gorm.Model
	EmployeeID uint `gorm:"not null;index:idx_employee_menu,unique" json:"employeeId"`
	MenuID     uint `gorm:"not null;index:idx_employee_menu,unique" json:"menuId"`
}
