// repository/plan_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(plan *entity.Plan) error {
	return r.DB.Create(plan).Error
}

func (r *PlanRepository) FindByID(id uint) (*entity.Plan, error) {
	var plan entity.Plan
	if err := r.DB.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindByName(name string) (*entity.Plan, error) {
	var plan entity.Plan
	if err := r.DB.Where("name = ?", name).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindAll() ([]entity.Plan, error) {
	var plans []entity.Plan
	err := r.DB.Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) Save(plan *entity.Plan) error {
	return r.DB.Save(plan).Error
}

func (r *PlanRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.Plan{}, id).Error
}
