// repository/placement_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type PlacementRepository struct {
	DB *gorm.DB
}

func NewPlacementRepository(db *gorm.DB) *PlacementRepository {
	return &PlacementRepository{DB: db}
}

func (r *PlacementRepository) Create(p *entity.Placement) error {
	return r.DB.Create(p).Error
}

func (r *PlacementRepository) FindByID(id uint) (*entity.Placement, error) {
	var p entity.Placement
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlacementRepository) FindAll() ([]entity.Placement, error) {
	var ps []entity.Placement
	err := r.DB.Order("id DESC").Find(&ps).Error
	return ps, err
}

func (r *PlacementRepository) Save(p *entity.Placement) error {
	return r.DB.Save(p).Error
}

func (r *PlacementRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.Placement{}, id).Error
}

// MockInterview ใช้ shape เดียวกันเลย

type MockInterviewRepository struct {
	DB *gorm.DB
}

func NewMockInterviewRepository(db *gorm.DB) *MockInterviewRepository {
	return &MockInterviewRepository{DB: db}
}

func (r *MockInterviewRepository) Create(m *entity.MockInterview) error {
	return r.DB.Create(m).Error
}

func (r *MockInterviewRepository) FindByID(id uint) (*entity.MockInterview, error) {
	var m entity.MockInterview
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MockInterviewRepository) FindAll() ([]entity.MockInterview, error) {
	var ms []entity.MockInterview
	err := r.DB.Order("id DESC").Find(&ms).Error
	return ms, err
}

func (r *MockInterviewRepository) Save(m *entity.MockInterview) error {
	return r.DB.Save(m).Error
}

func (r *MockInterviewRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.MockInterview{}, id).Error
}
