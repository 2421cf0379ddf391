package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

// ขนาด CV สูงสุด 5MB
const maxCVSize = 5 << 20

var allowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type FormService struct {
	Repo        *repository.FormRepository
	Jobs        *repository.JobRepository
	Internships *repository.InternshipRepository
}

func NewFormService(repo *repository.FormRepository, jobs *repository.JobRepository, internships *repository.InternshipRepository) *FormService {
	return &FormService{Repo: repo, Jobs: jobs, Internships: internships}
}

// Submit รับใบสมัคร + CV (base64) — ต้องชี้ job หรือ internship ที่มีจริงอันเดียว
func (s *FormService) Submit(form *entity.Form, cvBase64, cvType string) error {
	if form.JobID == nil && form.InternshipID == nil {
		return errors.New("form must reference a job or an internship")
	}

	if form.JobID != nil {
		job, err := s.Jobs.FindByID(*form.JobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}
		adminID := job.AdminID
		form.AdminID = &adminID
	} else {
		internship, err := s.Internships.FindByID(*form.InternshipID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInternshipNotFound
			}
			return err
		}
		adminID := internship.AdminID
		form.AdminID = &adminID
	}

	if cvBase64 != "" {
		cv, err := decodeCV(cvBase64, cvType)
		if err != nil {
			return err
		}
		form.CV = cv
		form.CVType = cvType
		form.CVSize = int64(len(cv))
	}

	return s.Repo.Create(form)
}

func (s *FormService) GetByID(id uint) (*entity.Form, error) {
	form, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

func (s *FormService) List() ([]entity.Form, error) {
	return s.Repo.FindAll()
}

func (s *FormService) ListByAdmin(adminID uint) ([]entity.Form, error) {
	return s.Repo.FindByAdmin(adminID)
}

func (s *FormService) ListByJob(jobID uint) ([]entity.Form, error) {
	return s.Repo.FindByJob(jobID)
}

func (s *FormService) ListByInternship(internshipID uint) ([]entity.Form, error) {
	return s.Repo.FindByInternship(internshipID)
}

func decodeCV(b64, cvType string) ([]byte, error) {
	if !allowedCVTypes[cvType] {
		return nil, fmt.Errorf("unsupported cv type %q", cvType)
	}
	// เผื่อ client ส่งมาทั้ง data URL
	if i := strings.Index(b64, ","); i >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode cv: %w", err)
	}
	if len(data) > maxCVSize {
		return nil, fmt.Errorf("cv too large: %d bytes", len(data))
	}
	return data, nil
}
