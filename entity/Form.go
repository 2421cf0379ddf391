package entity

import (
	"gorm.io/gorm"
)

// Form = ใบสมัครงาน/ฝึกงานของ user พร้อมไฟล์ CV
type Form struct {
	gorm.Model
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `gorm:"not null" json:"email"`
	Country      string `json:"country"`
	MobileNumber string `json:"mobileNumber"`
	Location     string `json:"location"`

	// เก็บไฟล์ CV
	CV     []byte `json:"-" gorm:"column:cv"`
	CVType string `json:"-" gorm:"column:cv_type"`
	CVSize int64  `json:"-" gorm:"column:cv_size"`

	JobID        *uint       `json:"jobId,omitempty"`
	Job          *Job        `json:"-"`
	InternshipID *uint       `json:"internshipId,omitempty"`
	Internship   *Internship `json:"-"`

	AdminID *uint  `json:"adminId,omitempty"`
	Admin   *Admin `json:"-"`
}
