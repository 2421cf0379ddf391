package entity

import (
	"time"

	"gorm.io/gorm"
)

// OTP สำหรับ reset password — หมดอายุตาม ExpiryDate
type ForgotPasswordOtp struct {
	gorm.Model
	Otp        string    `gorm:"not null" json:"-"`
	ExpiryDate time.Time `json:"expiryDate"`

	UserID *uint `gorm:"index" json:"userId,omitempty"`
	User   *User `json:"-"`
}
