package entity

import (
	"gorm.io/gorm"
)

// Admin สมัครเองได้ แต่ต้องรอ super admin อนุมัติก่อนถึงจะโพสต์งานได้
type Admin struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	MobileNo string `gorm:"uniqueIndex" json:"mobileNo"`

	// approved: false ตอนสมัคร, flip เป็น true ได้ทาง ApproveAdmin เท่านั้น
	// enabled:  true ตอนสมัคร, flip เป็น false ได้ทาง DisableAdmin เท่านั้น
	Approved bool `gorm:"not null;default:false" json:"approved"`
	Enabled  bool `gorm:"not null;default:true" json:"enabled"`

	// Relations ซ่อนเพื่อเลี่ยง payload บวม
	Jobs        []Job        `json:"-"`
	Internships []Internship `json:"-"`
	Forms       []Form       `json:"-"`
}
