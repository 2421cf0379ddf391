package entity

import (
	"gorm.io/gorm"
)

// สถานะระดับเนื้อหา (รับสมัครอยู่/ปิดรับ) — คนละเรื่องกับ moderation
const (
	PostStatusOpen   = "OPEN"
	PostStatusClosed = "CLOSED"
)

type Job struct {
	gorm.Model
	Title          string  `gorm:"not null" json:"title"`
	Location       string  `json:"location"`
	Category       string  `json:"category"`
	EmploymentType string  `json:"employmentType"`
	WorkModel      string  `json:"workModel"`
	Experience     string  `json:"experience"`
	Salary         float64 `json:"salary"`
	Skills         string  `json:"skills"`
	Company        string  `gorm:"not null" json:"company"`
	JobDescription string  `json:"jobDescription"`

	Status string `gorm:"not null;default:OPEN" json:"status"`

	OpeningStartDate DateOnly `json:"openingStartDate"`
	LastApplyDate    DateOnly `json:"lastApplyDate"`

	NumberOfOpenings   int    `json:"numberOfOpenings"`
	Perks              string `json:"perks"`
	CompanyDescription string `json:"companyDescription"`

	// เจ้าของโพสต์ — set ตอนอนุมัติเท่านั้น ไม่ใช่ตอน submit
	AdminID uint   `gorm:"index" json:"adminId"`
	Admin   *Admin `json:"-"`
}
