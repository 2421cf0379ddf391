// repository/super_admin_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type SuperAdminRepository struct {
	DB *gorm.DB
}

func NewSuperAdminRepository(db *gorm.DB) *SuperAdminRepository {
	return &SuperAdminRepository{DB: db}
}

func (r *SuperAdminRepository) Create(sa *entity.SuperAdmin) error {
	return r.DB.Create(sa).Error
}

func (r *SuperAdminRepository) FindByID(id uint) (*entity.SuperAdmin, error) {
	var sa entity.SuperAdmin
	if err := r.DB.First(&sa, id).Error; err != nil {
		return nil, err
	}
	return &sa, nil
}

func (r *SuperAdminRepository) FindByUsername(username string) (*entity.SuperAdmin, error) {
	var sa entity.SuperAdmin
	if err := r.DB.Where("username = ?", username).First(&sa).Error; err != nil {
		return nil, err
	}
	return &sa, nil
}

func (r *SuperAdminRepository) Save(sa *entity.SuperAdmin) error {
	return r.DB.Save(sa).Error
}

func (r *SuperAdminRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.SuperAdmin{}, id).Error
}
