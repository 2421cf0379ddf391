// repository/pending_post_repository.go
package repository

import (
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/gorm"
)

// PendingPostRepository คือคิวของ draft ที่รอ super admin ตัดสิน
type PendingPostRepository struct {
	DB *gorm.DB
}

func NewPendingPostRepository(db *gorm.DB) *PendingPostRepository {
	return &PendingPostRepository{DB: db}
}

func (r *PendingPostRepository) Create(post *entity.PendingPost) error {
	return r.DB.Create(post).Error
}

func (r *PendingPostRepository) FindByID(id uint) (*entity.PendingPost, error) {
	var post entity.PendingPost
	if err := r.DB.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ลำดับตามตอน insert
func (r *PendingPostRepository) FindAll() ([]entity.PendingPost, error) {
	var posts []entity.PendingPost
	err := r.DB.Order("id ASC").Find(&posts).Error
	return posts, err
}

// DeleteByID ลบแล้วบอกจำนวนแถวที่โดนจริง — 0 แปลว่ามีคนตัดสินตัดหน้าไปแล้ว
func (r *PendingPostRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.PendingPost{}, id)
	return res.RowsAffected, res.Error
}

// PublishJob สร้าง Job จริง + ลบ draft ออกจากคิว ใน transaction เดียว
// ถ้า draft หายไปก่อน (โดนตัดสินซ้อน) ทั้ง transaction จะ rollback
func (r *PendingPostRepository) PublishJob(post *entity.PendingPost, job *entity.Job) error {
	tx := r.DB.Begin()

	if err := tx.Create(job).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&entity.PendingPost{}, post.ID)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return gorm.ErrRecordNotFound
	}

	return tx.Commit().Error
}

// PublishInternship เหมือน PublishJob แต่ฝั่ง internship
func (r *PendingPostRepository) PublishInternship(post *entity.PendingPost, internship *entity.Internship) error {
	tx := r.DB.Begin()

	if err := tx.Create(internship).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&entity.PendingPost{}, post.ID)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return gorm.ErrRecordNotFound
	}

	return tx.Commit().Error
}
