package services

import (
	"errors"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

type InternshipService struct {
	Repo   *repository.InternshipRepository
	Admins *repository.AdminRepository
}

func NewInternshipService(repo *repository.InternshipRepository, admins *repository.AdminRepository) *InternshipService {
	return &InternshipService{Repo: repo, Admins: admins}
}

func (s *InternshipService) List() ([]entity.Internship, error) {
	return s.Repo.FindAll()
}

func (s *InternshipService) GetByID(id uint) (*entity.Internship, error) {
	internship, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) Search(f repository.InternshipFilter) ([]entity.Internship, error) {
	return s.Repo.Search(f)
}

func (s *InternshipService) ListByAdmin(adminID uint) ([]entity.Internship, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	return s.Repo.Search(repository.InternshipFilter{AdminID: adminID})
}

func (s *InternshipService) gate(adminID uint) (*entity.Admin, error) {
	admin, err := s.Admins.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	if !admin.Approved {
		return nil, ErrAdminNotApproved
	}
	if !admin.Enabled {
		return nil, ErrAdminNotEnabled
	}
	return admin, nil
}

func (s *InternshipService) UpdateStatus(adminID, internshipID uint, status string) (*entity.Internship, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	internship, err := s.GetByID(internshipID)
	if err != nil {
		return nil, err
	}
	if internship.AdminID != adminID {
		return nil, ErrNotPostOwner
	}
	internship.Status = status
	if err := s.Repo.Save(internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Update แก้เนื้อหาทั้งก้อน — เจ้าของเท่านั้น Status/AdminID ไม่แตะ
func (s *InternshipService) Update(adminID, internshipID uint, upd *entity.Internship) (*entity.Internship, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	internship, err := s.GetByID(internshipID)
	if err != nil {
		return nil, err
	}
	if internship.AdminID != adminID {
		return nil, ErrNotPostOwner
	}

	internship.Title = upd.Title
	internship.Company = upd.Company
	internship.Location = upd.Location
	internship.Duration = upd.Duration
	internship.Stipend = upd.Stipend
	internship.Qualifications = upd.Qualifications
	internship.Skills = upd.Skills
	internship.Description = upd.Description
	internship.OpeningStartDate = upd.OpeningStartDate
	internship.LastApplyDate = upd.LastApplyDate
	internship.NumberOfOpenings = upd.NumberOfOpenings
	internship.Perks = upd.Perks
	internship.CompanyDescription = upd.CompanyDescription

	if err := s.Repo.Save(internship); err != nil {
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) Delete(adminID, internshipID uint) error {
	if _, err := s.gate(adminID); err != nil {
		return err
	}
	internship, err := s.GetByID(internshipID)
	if err != nil {
		return err
	}
	if internship.AdminID != adminID {
		return ErrNotPostOwner
	}
	n, err := s.Repo.DeleteByID(internshipID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInternshipNotFound
	}
	return nil
}
