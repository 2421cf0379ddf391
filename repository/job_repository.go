// repository/job_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(job *entity.Job) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) FindByID(id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.DB.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) FindAll() ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.DB.Order("id DESC").Find(&jobs).Error
	return jobs, err
}

// JobFilter ว่าง = ไม่กรอง field นั้น
type JobFilter struct {
	Location       string
	Category       string
	EmploymentType string
	WorkModel      string
	Status         string

	// 0 = ทุกคน; ใช้ตอน admin ขอดูโพสต์ของตัวเอง
	AdminID uint
}

func (r *JobRepository) Search(f JobFilter) ([]entity.Job, error) {
	q := r.DB.Order("id DESC")
	if f.AdminID != 0 {
		q = q.Where("admin_id = ?", f.AdminID)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.EmploymentType != "" {
		q = q.Where("employment_type = ?", f.EmploymentType)
	}
	if f.WorkModel != "" {
		q = q.Where("work_model = ?", f.WorkModel)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var jobs []entity.Job
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Save(job *entity.Job) error {
	return r.DB.Save(job).Error
}

func (r *JobRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Job{}, id)
	return res.RowsAffected, res.Error
}
