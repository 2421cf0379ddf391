// repository/admin_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

// AdminRepository คือ directory store ของ admin
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	return r.DB.Create(admin).Error
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(username string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Save(admin *entity.Admin) error {
	return r.DB.Save(admin).Error
}

func (r *AdminRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.Admin{}, id).Error
}

func (r *AdminRepository) FindAll() ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.DB.Order("id DESC").Find(&admins).Error
	return admins, err
}

// รายการตาม flag — ใช้ทำหน้ารออนุมัติ/รายชื่อที่โดนปิด
func (r *AdminRepository) FindAllByApproved(approved bool) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.DB.Where("approved = ?", approved).Order("id DESC").Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) FindAllByEnabled(enabled bool) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.DB.Where("enabled = ?", enabled).Order("id DESC").Find(&admins).Error
	return admins, err
}
