package services

import (
	"errors"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

// ฝั่ง published posts — draft ที่ยังไม่อนุมัติไม่โผล่ที่นี่
type JobService struct {
	Repo   *repository.JobRepository
	Admins *repository.AdminRepository
}

func NewJobService(repo *repository.JobRepository, admins *repository.AdminRepository) *JobService {
	return &JobService{Repo: repo, Admins: admins}
}

func (s *JobService) List() ([]entity.Job, error) {
	return s.Repo.FindAll()
}

func (s *JobService) GetByID(id uint) (*entity.Job, error) {
	job, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) Search(f repository.JobFilter) ([]entity.Job, error) {
	return s.Repo.Search(f)
}

// ListByAdmin โพสต์ที่ publish แล้วของ admin คนเดียว
func (s *JobService) ListByAdmin(adminID uint) ([]entity.Job, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	return s.Repo.Search(repository.JobFilter{AdminID: adminID})
}

// gate เดียวกับตอน submit: ต้อง approved+enabled ถึงจัดการโพสต์ตัวเองได้
func (s *JobService) gate(adminID uint) (*entity.Admin, error) {
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

// UpdateStatus เปิด/ปิดรับสมัคร — สถานะระดับเนื้อหา ไม่เกี่ยวกับ moderation
func (s *JobService) UpdateStatus(adminID, jobID uint, status string) (*entity.Job, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.AdminID != adminID {
		return nil, ErrNotPostOwner
	}
	job.Status = status
	if err := s.Repo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update แก้เนื้อหาโพสต์ที่ publish แล้วทั้งก้อน — เจ้าของเท่านั้น
// ไม่แตะ Status (มี UpdateStatus แยก) และไม่แตะ AdminID
func (s *JobService) Update(adminID, jobID uint, upd *entity.Job) (*entity.Job, error) {
	if _, err := s.gate(adminID); err != nil {
		return nil, err
	}
	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.AdminID != adminID {
		return nil, ErrNotPostOwner
	}

	job.Title = upd.Title
	job.Location = upd.Location
	job.Category = upd.Category
	job.EmploymentType = upd.EmploymentType
	job.WorkModel = upd.WorkModel
	job.Experience = upd.Experience
	job.Salary = upd.Salary
	job.Skills = upd.Skills
	job.Company = upd.Company
	job.JobDescription = upd.JobDescription
	job.OpeningStartDate = upd.OpeningStartDate
	job.LastApplyDate = upd.LastApplyDate
	job.NumberOfOpenings = upd.NumberOfOpenings
	job.Perks = upd.Perks
	job.CompanyDescription = upd.CompanyDescription

	if err := s.Repo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete ลบได้เฉพาะเจ้าของโพสต์
func (s *JobService) Delete(adminID, jobID uint) error {
	if _, err := s.gate(adminID); err != nil {
		return err
	}
	job, err := s.GetByID(jobID)
	if err != nil {
		return err
	}
	if job.AdminID != adminID {
		return ErrNotPostOwner
	}
	n, err := s.Repo.DeleteByID(jobID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}
