package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserName string `gorm:"uniqueIndex;not null" json:"userName"`
	FullName string `json:"fullName"`
	EmailID  string `gorm:"uniqueIndex;not null" json:"emailId"`
	Password string `json:"-"` // ปลอดภัย
	Gender   string `json:"gender"`
	MobileNo string `gorm:"uniqueIndex" json:"mobileNo"`
	Status   string `gorm:"not null;default:ACTIVE" json:"status"`

	PlanID *uint `json:"planId,omitempty"`
	Plan   *Plan `json:"plan,omitempty"`

	// preload เฉพาะตอนจำเป็น
	Payments []Payment          `json:"-"`
	Otp      *ForgotPasswordOtp `json:"-"`
}
