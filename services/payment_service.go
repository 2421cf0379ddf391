package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

const paymentCurrency = "INR"

type PaymentService struct {
	Users    *repository.UserRepository
	Plans    *repository.PlanRepository
	Payments *repository.PaymentRepository

	keySecret string
	client    *razorpay.Client
}

func NewPaymentService(
	users *repository.UserRepository,
	plans *repository.PlanRepository,
	payments *repository.PaymentRepository,
	keyID, keySecret string,
) *PaymentService {
	return &PaymentService{
		Users:     users,
		Plans:     plans,
		Payments:  payments,
		keySecret: keySecret,
		client:    razorpay.NewClient(keyID, keySecret),
	}
}

// CreateOrder เปิด order ฝั่ง gateway แล้วบันทึก payment สถานะ PENDING
func (s *PaymentService) CreateOrder(userID uint, planName string) (map[string]interface{}, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	plan, err := s.Plans.FindByName(planName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	receipt := "rcpt_" + uuid.NewString()[:13]
	data := map[string]interface{}{
		"amount":   int(plan.Price * 100), // หน่วย paise
		"currency": paymentCurrency,
		"receipt":  receipt,
	}
	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	payment := entity.Payment{
		RazorpayOrderID: orderID,
		Receipt:         receipt,
		Amount:          plan.Price,
		Currency:        paymentCurrency,
		PaymentStatus:   entity.PaymentStatusPending,
		UserID:          user.ID,
		PlanID:          plan.ID,
	}
	if err := s.Payments.Create(&payment); err != nil {
		return nil, err
	}

	log.Printf("payment order %s created for user %d plan %s", orderID, userID, planName)
	return order, nil
}

// VerifyPayment ตรวจ signature จาก callback ของ gateway
// ผ่าน → SUCCESS และผูก plan ให้ user, ไม่ผ่าน → FAILED
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) (*entity.Payment, error) {
	payment, err := s.Payments.FindByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	user, err := s.Users.FindByID(payment.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !verifySignature(orderID, paymentID, signature, s.keySecret) {
		payment.PaymentStatus = entity.PaymentStatusFailed
		if err := s.Payments.Save(payment); err != nil {
			return nil, err
		}
		return payment, ErrSignatureMismatch
	}

	payment.RazorpayPaymentID = paymentID
	payment.PaymentStatus = entity.PaymentStatusSuccess
	if err := s.Payments.MarkPaid(payment, user); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListByUser(userID uint) ([]entity.Payment, error) {
	return s.Payments.FindByUser(userID)
}

// ===== report ฝั่ง super admin =====

func (s *PaymentService) ListAll() ([]entity.Payment, error) {
	return s.Payments.FindAll()
}

func (s *PaymentService) ListByStatus(status string) ([]entity.Payment, error) {
	switch status {
	case entity.PaymentStatusPending, entity.PaymentStatusSuccess, entity.PaymentStatusFailed:
		return s.Payments.FindByStatus(status)
	}
	return nil, fmt.Errorf("unknown payment status %q", status)
}

func (s *PaymentService) ListByPlan(planID uint) ([]entity.Payment, error) {
	if _, err := s.Plans.FindByID(planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return s.Payments.FindByPlan(planID)
}

// UsersEnrolledInPlan สมาชิกที่ผูกกับ plan อยู่ตอนนี้
func (s *PaymentService) UsersEnrolledInPlan(planID uint) ([]entity.User, error) {
	if _, err := s.Plans.FindByID(planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return s.Users.FindByPlan(planID)
}

// signature = HMAC-SHA256(orderId|paymentId, keySecret) แบบ hex
func verifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
