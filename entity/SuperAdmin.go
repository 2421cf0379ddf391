package entity

import (
	"gorm.io/gorm"
)

// SuperAdmin ไม่มีขั้นตอนอนุมัติ สมัครตรงได้เลย
type SuperAdmin struct {
	gorm.Model
	SuperAdminName string `json:"superAdminName"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Password       string `json:"-"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
}
