// repository/form_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type FormRepository struct {
	DB *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{DB: db}
}

func (r *FormRepository) Create(form *entity.Form) error {
	return r.DB.Create(form).Error
}

func (r *FormRepository) FindByID(id uint) (*entity.Form, error) {
	var form entity.Form
	if err := r.DB.Preload("Job").Preload("Internship").First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) FindAll() ([]entity.Form, error) {
	var forms []entity.Form
	err := r.DB.Order("id DESC").Find(&forms).Error
	return forms, err
}

// ใบสมัครที่เข้าโพสต์ของ admin คนหนึ่ง (stamp AdminID ตอน submit)
func (r *FormRepository) FindByAdmin(adminID uint) ([]entity.Form, error) {
	var forms []entity.Form
	err := r.DB.Where("admin_id = ?", adminID).Order("id DESC").Find(&forms).Error
	return forms, err
}

// ใบสมัครทั้งหมดของโพสต์หนึ่ง
func (r *FormRepository) FindByJob(jobID uint) ([]entity.Form, error) {
	var forms []entity.Form
	err := r.DB.Where("job_id = ?", jobID).Order("id DESC").Find(&forms).Error
	return forms, err
}

func (r *FormRepository) FindByInternship(internshipID uint) ([]entity.Form, error) {
	var forms []entity.Form
	err := r.DB.Where("internship_id = ?", internshipID).Order("id DESC").Find(&forms).Error
	return forms, err
}
