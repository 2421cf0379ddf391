package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

type Payment struct {
	gorm.Model
	RazorpayOrderID   string  `gorm:"uniqueIndex;not null" json:"razorpayOrderId"`
	RazorpayPaymentID string  `json:"razorpayPaymentId"`
	Receipt           string  `json:"receipt"`
	Amount            float64 `gorm:"not null" json:"amount"`
	Currency          string  `gorm:"not null" json:"currency"`
	PaymentStatus     string  `gorm:"not null;default:PENDING" json:"paymentStatus"`

	UserID uint  `gorm:"index" json:"userId"`
	User   *User `json:"-"`
	PlanID uint  `gorm:"index" json:"planId"`
	Plan   *Plan `json:"-"`
}
