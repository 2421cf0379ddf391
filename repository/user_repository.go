// repository/user_repository.go
package repository

import (
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Plan").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUserName(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email_id = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Save(user *entity.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id DESC").Find(&users).Error
	return users, err
}

// FindByPlan สมาชิกที่ active อยู่บน plan นั้น
func (r *UserRepository) FindByPlan(planID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("plan_id = ?", planID).Order("id DESC").Find(&users).Error
	return users, err
}

// ===== forgot-password OTP =====

// เก็บได้ทีละอัน อันเก่าจะถูกแทนที่
func (r *UserRepository) UpsertOtp(userID uint, otp string, expiry time.Time) error {
	tx := r.DB.Begin()
	if err := tx.Where("user_id = ?", userID).Delete(&entity.ForgotPasswordOtp{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	rec := entity.ForgotPasswordOtp{Otp: otp, ExpiryDate: expiry, UserID: &userID}
	if err := tx.Create(&rec).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *UserRepository) FindOtpByUser(userID uint) (*entity.ForgotPasswordOtp, error) {
	var rec entity.ForgotPasswordOtp
	if err := r.DB.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *UserRepository) DeleteOtpByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&entity.ForgotPasswordOtp{}).Error
}
