// repository/internship_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type InternshipRepository struct {
	DB *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{DB: db}
}

func (r *InternshipRepository) Create(internship *entity.Internship) error {
	return r.DB.Create(internship).Error
}

func (r *InternshipRepository) FindByID(id uint) (*entity.Internship, error) {
	var internship entity.Internship
	if err := r.DB.First(&internship, id).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepository) FindAll() ([]entity.Internship, error) {
	var internships []entity.Internship
	err := r.DB.Order("id DESC").Find(&internships).Error
	return internships, err
}

type InternshipFilter struct {
	Location string
	Duration string
	Status   string

	// 0 = ทุกคน
	AdminID uint
}

func (r *InternshipRepository) Search(f InternshipFilter) ([]entity.Internship, error) {
	q := r.DB.Order("id DESC")
	if f.AdminID != 0 {
		q = q.Where("admin_id = ?", f.AdminID)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Duration != "" {
		q = q.Where("duration = ?", f.Duration)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var internships []entity.Internship
	err := q.Find(&internships).Error
	return internships, err
}

func (r *InternshipRepository) Save(internship *entity.Internship) error {
	return r.DB.Save(internship).Error
}

func (r *InternshipRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Internship{}, id)
	return res.RowsAffected, res.Error
}
