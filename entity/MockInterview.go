package entity

import (
	"gorm.io/gorm"
)

type MockInterview struct {
	gorm.Model
	Text      string `gorm:"not null" json:"text"`
	Hyperlink string `gorm:"not null" json:"hyperlink"`
}
