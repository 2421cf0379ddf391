// repository/payment_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(payment *entity.Payment) error {
	return r.DB.Create(payment).Error
}

func (r *PaymentRepository) FindByOrderID(orderID string) (*entity.Payment, error) {
	var payment entity.Payment
	if err := r.DB.Where("razorpay_order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByUser(userID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&payments).Error
	return payments, err
}

// ฝั่ง report ของ super admin

func (r *PaymentRepository) FindAll() ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindByStatus(status string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("payment_status = ?", status).Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindByPlan(planID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("plan_id = ?", planID).Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Save(payment *entity.Payment) error {
	return r.DB.Save(payment).Error
}

// MarkPaid ปิดยอด + ผูก plan ให้ user ใน transaction เดียว
func (r *PaymentRepository) MarkPaid(payment *entity.Payment, user *entity.User) error {
	tx := r.DB.Begin()

	if err := tx.Save(payment).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&entity.User{}).Where("id = ?", user.ID).
		Update("plan_id", payment.PlanID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
