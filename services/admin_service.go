package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"gorm.io/gorm"
)

type AdminService struct {
	Repo     *repository.AdminRepository
	Notifier Notifier

	// เมลปลายทางตอนมี admin สมัครใหม่
	SuperAdminEmail string
}

func NewAdminService(repo *repository.AdminRepository, notifier Notifier, superAdminEmail string) *AdminService {
	return &AdminService{Repo: repo, Notifier: notifier, SuperAdminEmail: superAdminEmail}
}

// Register สมัครเองได้เลย แต่เริ่มที่ approved=false เสมอ
func (s *AdminService) Register(admin *entity.Admin) error {
	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}
	admin.Password = hash
	admin.Approved = false
	admin.Enabled = true

	if err := s.Repo.Create(admin); err != nil {
		return err
	}

	// แจ้ง super admin ให้มารีวิว — ส่งไม่ได้ก็ไม่ยกเลิกการสมัคร
	body := fmt.Sprintf("An admin with email %s has registered. Please review and approve.", admin.Email)
	if err := s.Notifier.Notify(s.SuperAdminEmail, "Admin Registration Request", body); err != nil {
		log.Printf("registration mail for admin %d failed: %v", admin.ID, err)
	}
	return nil
}

// Login ตรวจรหัสก่อน แล้วค่อยเช็ค approved/enabled เพื่อให้ client แยก state ได้
func (s *AdminService) Login(username, password string) (*entity.Admin, error) {
	admin, err := s.Repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	if !admin.Approved {
		return nil, ErrAdminNotApproved
	}
	if !admin.Enabled {
		return nil, ErrAdminNotEnabled
	}
	return admin, nil
}

// AdminUpdate — field ไหน nil = ไม่แตะ
type AdminUpdate struct {
	Name     *string `json:"name"`
	MobileNo *string `json:"mobileNo"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

// Update อัปเดตเฉพาะ field ที่ส่งมาและผ่าน pattern — field ที่ไม่ผ่านจะถูกข้าม
func (s *AdminService) Update(adminID uint, upd AdminUpdate) (*entity.Admin, error) {
	admin, err := s.Repo.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if upd.Name != nil && utils.NamePattern.MatchString(*upd.Name) {
		admin.Name = *upd.Name
	}
	if upd.MobileNo != nil && utils.ValidPhone(*upd.MobileNo) {
		admin.MobileNo = *upd.MobileNo
	}
	if upd.Username != nil && utils.ValidUsername(*upd.Username) {
		admin.Username = *upd.Username
	}
	if upd.Email != nil && utils.ValidEmail(*upd.Email) {
		admin.Email = *upd.Email
	}
	if upd.Password != nil && utils.PasswordPattern.MatchString(*upd.Password) {
		hash, err := utils.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		admin.Password = hash
	}

	if err := s.Repo.Save(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(adminID uint) error {
	if _, err := s.Repo.FindByID(adminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return s.Repo.DeleteByID(adminID)
}

func (s *AdminService) GetByID(adminID uint) (*entity.Admin, error) {
	admin, err := s.Repo.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) GetAll() ([]entity.Admin, error) {
	return s.Repo.FindAll()
}
