package entity

import (
	"gorm.io/gorm"
)

type Internship struct {
	gorm.Model
	Title          string `gorm:"not null" json:"title"`
	Company        string `gorm:"not null" json:"company"`
	Location       string `gorm:"not null" json:"location"`
	Duration       string `json:"duration"`
	Stipend        string `json:"stipend"`
	Qualifications string `gorm:"not null" json:"qualifications"`
	Skills         string `json:"skills"`
	Description    string `json:"description"`

	Status string `gorm:"not null;default:OPEN" json:"status"`

	OpeningStartDate DateOnly `json:"openingStartDate"`
	LastApplyDate    DateOnly `json:"lastApplyDate"`

	NumberOfOpenings   int    `json:"numberOfOpenings"`
	Perks              string `json:"perks"`
	CompanyDescription string `json:"companyDescription"`

	AdminID uint   `gorm:"index" json:"adminId"`
	Admin   *Admin `json:"-"`
}
