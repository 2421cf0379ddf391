package entity

import (
	"gorm.io/gorm"
)

// ลิงก์ประกาศ placement บนหน้าเว็บ
type Placement struct {
	gorm.Model
	Text      string `gorm:"not null" json:"text"`
	Hyperlink string `gorm:"not null" json:"hyperlink"`
}
