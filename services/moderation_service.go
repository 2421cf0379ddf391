package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

// ModerationFeed กระจาย event ไปหา dashboard ของ super admin (ผ่าน ws hub)
// เป็น optional — nil ได้
type ModerationFeed interface {
	PendingQueued(post *entity.PendingPost)
	PostDecided(postID uint, approved bool)
}

// ModerationService คุม lifecycle ของ admin (approve/disable) กับของโพสต์
// (submit → pending → approve/reject)
type ModerationService struct {
	Admins      *repository.AdminRepository
	Pending     *repository.PendingPostRepository
	Jobs        *repository.JobRepository
	Internships *repository.InternshipRepository
	Notifier    Notifier

	feed ModerationFeed
}

func NewModerationService(
	admins *repository.AdminRepository,
	pending *repository.PendingPostRepository,
	jobs *repository.JobRepository,
	internships *repository.InternshipRepository,
	notifier Notifier,
) *ModerationService {
	return &ModerationService{
		Admins:      admins,
		Pending:     pending,
		Jobs:        jobs,
		Internships: internships,
		Notifier:    notifier,
	}
}

func (s *ModerationService) SetFeed(feed ModerationFeed) {
	s.feed = feed
}

// GateCheck ลำดับตายตัว: มีตัวตน → approved → enabled
func (s *ModerationService) GateCheck(adminID uint) (*entity.Admin, error) {
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

// SubmitJob เก็บ draft ลงคิว — ยังไม่สร้าง Job จริง
func (s *ModerationService) SubmitJob(job *entity.Job, adminID uint) (uint, error) {
	if _, err := s.GateCheck(adminID); err != nil {
		return 0, err
	}

	// เจ้าของจะถูก set ตอนอนุมัติ ไม่ใช่ตอนนี้
	job.ID = 0
	job.AdminID = 0
	job.Admin = nil
	if job.Status == "" {
		job.Status = entity.PostStatusOpen
	}

	content, err := snapshotJob(job)
	if err != nil {
		return 0, err
	}
	post := &entity.PendingPost{
		Type:      entity.PostTypeJob,
		Content:   content,
		AdminID:   adminID,
		CreatedAt: time.Now(),
		Approved:  false,
	}
	if err := s.Pending.Create(post); err != nil {
		return 0, err
	}

	log.Printf("job draft %d from admin %d queued for approval", post.ID, adminID)
	if s.feed != nil {
		s.feed.PendingQueued(post)
	}
	return post.ID, nil
}

func (s *ModerationService) SubmitInternship(internship *entity.Internship, adminID uint) (uint, error) {
	if _, err := s.GateCheck(adminID); err != nil {
		return 0, err
	}

	internship.ID = 0
	internship.AdminID = 0
	internship.Admin = nil
	if internship.Status == "" {
		internship.Status = entity.PostStatusOpen
	}

	content, err := snapshotInternship(internship)
	if err != nil {
		return 0, err
	}
	post := &entity.PendingPost{
		Type:      entity.PostTypeInternship,
		Content:   content,
		AdminID:   adminID,
		CreatedAt: time.Now(),
		Approved:  false,
	}
	if err := s.Pending.Create(post); err != nil {
		return 0, err
	}

	log.Printf("internship draft %d from admin %d queued for approval", post.ID, adminID)
	if s.feed != nil {
		s.feed.PendingQueued(post)
	}
	return post.ID, nil
}

// Decide ตัดสิน draft หนึ่งตัว — approve แล้วได้ id ของโพสต์ที่ publish, reject ได้ 0
// ตัดสินซ้อนกันได้แค่คนเดียว: คนช้าเจอ ErrPendingPostNotFound
func (s *ModerationService) Decide(pendingID uint, approved bool) (uint, error) {
	post, err := s.Pending.FindByID(pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPendingPostNotFound
		}
		return 0, err
	}

	if !approved {
		n, err := s.Pending.DeleteByID(post.ID)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ErrPendingPostNotFound
		}
		log.Printf("pending post %d disapproved and deleted", post.ID)
		if s.feed != nil {
			s.feed.PostDecided(post.ID, false)
		}
		return 0, nil
	}

	// admin อาจโดนลบไประหว่างรอคิว — ต้อง fail ชัด ๆ ไม่ publish โพสต์กำพร้า
	admin, err := s.Admins.FindByID(post.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAdminNotFound
		}
		return 0, err
	}

	var publishedID uint
	switch post.Type {
	case entity.PostTypeJob:
		job, err := restoreJob(post.Content)
		if err != nil {
			return 0, err
		}
		job.AdminID = admin.ID
		if err := s.Pending.PublishJob(post, job); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrPendingPostNotFound
			}
			return 0, err
		}
		publishedID = job.ID
	case entity.PostTypeInternship:
		internship, err := restoreInternship(post.Content)
		if err != nil {
			return 0, err
		}
		internship.AdminID = admin.ID
		if err := s.Pending.PublishInternship(post, internship); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrPendingPostNotFound
			}
			return 0, err
		}
		publishedID = internship.ID
	default:
		return 0, fmt.Errorf("unknown pending post type %q", post.Type)
	}

	log.Printf("pending post %d approved, published as %s %d", post.ID, post.Type, publishedID)
	if s.feed != nil {
		s.feed.PostDecided(post.ID, true)
	}
	return publishedID, nil
}

// ApproveAdmin เปิดสิทธิ์โพสต์ให้ admin แล้วส่งเมลแจ้ง
// เมลเป็น best-effort: ส่งไม่ได้ก็แค่ log ไม่ rollback การอนุมัติ
func (s *ModerationService) ApproveAdmin(adminID uint) (*entity.Admin, error) {
	admin, err := s.Admins.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	admin.Approved = true
	if err := s.Admins.Save(admin); err != nil {
		return nil, err
	}

	if err := s.Notifier.Notify(admin.Email, "Admin Approval", approvalMailBody(admin.Name)); err != nil {
		log.Printf("approval mail to %s failed: %v", admin.Email, err)
	}
	return admin, nil
}

// DisableAdmin ปิดสิทธิ์ — ไม่มีเมล และ (ตาม policy ปัจจุบัน) ไม่มีทางเปิดกลับ
func (s *ModerationService) DisableAdmin(adminID uint) (*entity.Admin, error) {
	admin, err := s.Admins.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	admin.Enabled = false
	if err := s.Admins.Save(admin); err != nil {
		return nil, err
	}
	log.Printf("admin %d has been disabled", adminID)
	return admin, nil
}

func (s *ModerationService) ListPendingPosts() ([]entity.PendingPost, error) {
	return s.Pending.FindAll()
}

func (s *ModerationService) ListAdmins() ([]entity.Admin, error) {
	return s.Admins.FindAll()
}

func (s *ModerationService) ListAdminsByApproved(approved bool) ([]entity.Admin, error) {
	return s.Admins.FindAllByApproved(approved)
}

func (s *ModerationService) ListAdminsByEnabled(enabled bool) ([]entity.Admin, error) {
	return s.Admins.FindAllByEnabled(enabled)
}

func approvalMailBody(name string) string {
	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif;">
<p>Dear %s,</p>
<p>A profile has been approved for you in the AcchaJob Portal.</p>
<p>Log on to: <a href="https://acchajob.com">acchajob.com</a></p>
<p>Regards,<br>AcchaJob Team</p>
</body></html>`, name)
}
