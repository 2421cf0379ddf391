package entity

import (
	"time"

	"gorm.io/datatypes"
)

type PostType string

const (
	PostTypeJob        PostType = "JOB"
	PostTypeInternship PostType = "INTERNSHIP"
)

// PendingPost คือ draft ที่รอ super admin ตัดสิน
// มีชีวิตอยู่แค่ช่วง submit → approve/reject เท่านั้น พอมีคำตัดสินแถวนี้จะถูกลบ
// (approve แล้วย้าย content ไปเป็น Job/Internship จริง)
type PendingPost struct {
	ID      uint           `gorm:"primarykey" json:"id"`
	Type    PostType       `gorm:"type:varchar(20);not null" json:"type"`
	Content datatypes.JSON `gorm:"not null" json:"content"`

	// เก็บ id คนยื่นไว้เฉย ๆ ไม่ใช่ ownership — Job/Internship จริงค่อยผูก admin
	AdminID uint `gorm:"index;not null" json:"adminId"`

	CreatedAt time.Time `json:"createdAt"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
}
