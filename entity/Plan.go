package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Plan struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    string  `json:"duration"`

	// รายการ feature เก็บเป็น JSON array
	Features datatypes.JSON `json:"features"`

	Payments []Payment `json:"-"`
}
