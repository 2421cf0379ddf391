package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type UserService struct {
	Repo     *repository.UserRepository
	Notifier Notifier
}

func NewUserService(repo *repository.UserRepository, notifier Notifier) *UserService {
	return &UserService{Repo: repo, Notifier: notifier}
}

func (s *UserService) Register(user *entity.User) error {
	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	if user.Status == "" {
		user.Status = "ACTIVE"
	}
	return s.Repo.Create(user)
}

func (s *UserService) Login(username, password string) (*entity.User, error) {
	user, err := s.Repo.FindByUserName(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*entity.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UserUpdate struct {
	FullName *string `json:"fullName"`
	Gender   *string `json:"gender"`
	MobileNo *string `json:"mobileNo"`
	Password *string `json:"password"`
}

func (s *UserService) Update(id uint, upd UserUpdate) (*entity.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if upd.FullName != nil && *upd.FullName != "" {
		user.FullName = *upd.FullName
	}
	if upd.Gender != nil && *upd.Gender != "" {
		user.Gender = *upd.Gender
	}
	if upd.MobileNo != nil && utils.ValidPhone(*upd.MobileNo) {
		user.MobileNo = *upd.MobileNo
	}
	if upd.Password != nil && utils.PasswordPattern.MatchString(*upd.Password) {
		hash, err := utils.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repo.DeleteByID(id)
}

// ===== forgot password =====

// ForgotPassword ออก OTP 6 หลัก อายุ 10 นาที แล้วส่งเมล
func (s *UserService) ForgotPassword(email string) error {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	otp, err := generateOtp()
	if err != nil {
		return err
	}
	if err := s.Repo.UpsertOtp(user.ID, otp, time.Now().Add(otpTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset OTP is <b>%s</b>. It expires in 10 minutes.", otp)
	if err := s.Notifier.Notify(user.EmailID, "Password Reset OTP", body); err != nil {
		// OTP ออกไปแล้ว เมลพังก็แจ้ง caller ตรง ๆ
		log.Printf("otp mail to %s failed: %v", user.EmailID, err)
		return err
	}
	return nil
}

// ResetPassword ตรวจ OTP แล้วตั้งรหัสใหม่ — OTP ใช้ได้ครั้งเดียว
func (s *UserService) ResetPassword(email, otp, newPassword string) error {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	rec, err := s.Repo.FindOtpByUser(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOtpInvalid
		}
		return err
	}
	if time.Now().After(rec.ExpiryDate) {
		_ = s.Repo.DeleteOtpByUser(user.ID)
		return ErrOtpExpired
	}
	if rec.Otp != otp {
		return ErrOtpInvalid
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	if err := s.Repo.Save(user); err != nil {
		return err
	}
	return s.Repo.DeleteOtpByUser(user.ID)
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
