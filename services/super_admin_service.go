package services

import (
	"errors"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"gorm.io/gorm"
)

// SuperAdmin สมัครตรง ไม่ต้องรอใครอนุมัติ
type SuperAdminService struct {
	Repo *repository.SuperAdminRepository
}

func NewSuperAdminService(repo *repository.SuperAdminRepository) *SuperAdminService {
	return &SuperAdminService{Repo: repo}
}

func (s *SuperAdminService) Register(sa *entity.SuperAdmin) error {
	hash, err := utils.HashPassword(sa.Password)
	if err != nil {
		return err
	}
	sa.Password = hash
	return s.Repo.Create(sa)
}

func (s *SuperAdminService) Login(username, password string) (*entity.SuperAdmin, error) {
	sa, err := s.Repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuperAdminNotFound
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, sa.Password) {
		return nil, ErrInvalidCredentials
	}
	return sa, nil
}

type SuperAdminUpdate struct {
	SuperAdminName *string `json:"superAdminName"`
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
}

func (s *SuperAdminService) Update(id uint, upd SuperAdminUpdate) (*entity.SuperAdmin, error) {
	sa, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuperAdminNotFound
		}
		return nil, err
	}

	if upd.SuperAdminName != nil && *upd.SuperAdminName != "" {
		sa.SuperAdminName = *upd.SuperAdminName
	}
	if upd.Username != nil && utils.ValidUsername(*upd.Username) {
		sa.Username = *upd.Username
	}
	if upd.Email != nil && utils.ValidEmail(*upd.Email) {
		sa.Email = *upd.Email
	}
	if upd.Password != nil && utils.PasswordPattern.MatchString(*upd.Password) {
		hash, err := utils.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		sa.Password = hash
	}

	if err := s.Repo.Save(sa); err != nil {
		return nil, err
	}
	return sa, nil
}

func (s *SuperAdminService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSuperAdminNotFound
		}
		return err
	}
	return s.Repo.DeleteByID(id)
}
