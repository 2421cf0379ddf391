package services

import (
	"errors"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

func newJobFixture(t *testing.T) (*JobService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewJobService(repository.NewJobRepository(db), repository.NewAdminRepository(db)), db
}

func seedNamedAdmin(t *testing.T, db *gorm.DB, username, mobile string) *entity.Admin {
	t.Helper()
	admin := &entity.Admin{
		Name:     "Recruiter",
		Username: username,
		Password: "hashed",
		Email:    username + "@example.com",
		MobileNo: mobile,
		Approved: true,
		Enabled:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin %s: %v", username, err)
	}
	return admin
}

func seedOwnedJob(t *testing.T, db *gorm.DB, adminID uint, title string) *entity.Job {
	t.Helper()
	job := &entity.Job{Title: title, Company: "Acme", Status: entity.PostStatusOpen, AdminID: adminID}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestJobListByAdminScopesToOwner(t *testing.T) {
	svc, db := newJobFixture(t)
	mine := seedNamedAdmin(t, db, "owner0001", "9000000011")
	other := seedNamedAdmin(t, db, "owner0002", "9000000012")

	seedOwnedJob(t, db, mine.ID, "Mine A")
	seedOwnedJob(t, db, other.ID, "Theirs")
	seedOwnedJob(t, db, mine.ID, "Mine B")

	jobs, err := svc.ListByAdmin(mine.ID)
	if err != nil {
		t.Fatalf("list by admin: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	for _, job := range jobs {
		if job.AdminID != mine.ID {
			t.Errorf("job %q belongs to admin %d, want only %d", job.Title, job.AdminID, mine.ID)
		}
	}
}

func TestJobListByAdminRequiresGate(t *testing.T) {
	svc, db := newJobFixture(t)
	admin := seedNamedAdmin(t, db, "owner0003", "9000000013")
	if err := db.Model(admin).Update("enabled", false).Error; err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, err := svc.ListByAdmin(admin.ID); !errors.Is(err, ErrAdminNotEnabled) {
		t.Errorf("disabled admin listing: got %v, want ErrAdminNotEnabled", err)
	}
	if _, err := svc.ListByAdmin(999); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("missing admin listing: got %v, want ErrAdminNotFound", err)
	}
}

func TestJobUpdateReplacesContent(t *testing.T) {
	svc, db := newJobFixture(t)
	owner := seedNamedAdmin(t, db, "owner0004", "9000000014")
	job := seedOwnedJob(t, db, owner.ID, "Old Title")
	if err := db.Model(job).Update("status", entity.PostStatusClosed).Error; err != nil {
		t.Fatalf("close job: %v", err)
	}

	updated, err := svc.Update(owner.ID, job.ID, &entity.Job{
		Title:          "New Title",
		Company:        "Acme v2",
		Location:       "Delhi",
		JobDescription: "Rewritten",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "New Title" || updated.Company != "Acme v2" || updated.Location != "Delhi" {
		t.Errorf("content not replaced: %+v", updated)
	}
	// owner กับ status ต้องอยู่ที่เดิม
	if updated.AdminID != owner.ID {
		t.Errorf("owner changed to %d", updated.AdminID)
	}
	if updated.Status != entity.PostStatusClosed {
		t.Errorf("status = %q, want CLOSED untouched", updated.Status)
	}
}

func TestJobUpdateOwnerOnly(t *testing.T) {
	svc, db := newJobFixture(t)
	owner := seedNamedAdmin(t, db, "owner0005", "9000000015")
	intruder := seedNamedAdmin(t, db, "owner0006", "9000000016")
	job := seedOwnedJob(t, db, owner.ID, "Guarded")

	if _, err := svc.Update(intruder.ID, job.ID, &entity.Job{Title: "Hijacked", Company: "X"}); !errors.Is(err, ErrNotPostOwner) {
		t.Errorf("non-owner update: got %v, want ErrNotPostOwner", err)
	}
	if _, err := svc.Update(owner.ID, 999, &entity.Job{Title: "X", Company: "X"}); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("missing job update: got %v, want ErrJobNotFound", err)
	}
}
