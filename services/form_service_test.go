package services

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

func newFormFixture(t *testing.T) (*FormService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewFormService(
		repository.NewFormRepository(db),
		repository.NewJobRepository(db),
		repository.NewInternshipRepository(db),
	)
	return svc, db
}

func seedJob(t *testing.T, db *gorm.DB, adminID uint) *entity.Job {
	t.Helper()
	job := &entity.Job{Title: "Backend Engineer", Company: "Acme", Status: entity.PostStatusOpen, AdminID: adminID}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestFormSubmitBindsPostOwner(t *testing.T) {
	svc, db := newFormFixture(t)
	job := seedJob(t, db, 7)

	form := &entity.Form{
		FirstName: "Asha",
		Email:     "asha@example.com",
		JobID:     &job.ID,
	}
	cv := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
	if err := svc.Submit(form, cv, "application/pdf"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if form.AdminID == nil || *form.AdminID != 7 {
		t.Errorf("form admin = %v, want owner of the job post", form.AdminID)
	}
	if form.CVSize != int64(len("%PDF-1.4 fake")) {
		t.Errorf("cv size = %d, want %d", form.CVSize, len("%PDF-1.4 fake"))
	}
}

func TestFormSubmitRequiresExistingPost(t *testing.T) {
	svc, _ := newFormFixture(t)

	missing := uint(999)
	err := svc.Submit(&entity.Form{FirstName: "Asha", Email: "a@b.co", JobID: &missing}, "", "")
	if !errors.Is(err, ErrJobNotFound) {
		t.Errorf("missing job: got %v, want ErrJobNotFound", err)
	}

	err = svc.Submit(&entity.Form{FirstName: "Asha", Email: "a@b.co", InternshipID: &missing}, "", "")
	if !errors.Is(err, ErrInternshipNotFound) {
		t.Errorf("missing internship: got %v, want ErrInternshipNotFound", err)
	}

	if err := svc.Submit(&entity.Form{FirstName: "Asha", Email: "a@b.co"}, "", ""); err == nil {
		t.Error("form without job or internship accepted")
	}
}

func TestFormListByAdminScopesToOwner(t *testing.T) {
	svc, db := newFormFixture(t)
	mineJob := seedJob(t, db, 7)
	theirJob := seedJob(t, db, 8)

	for i, job := range []*entity.Job{mineJob, theirJob, mineJob} {
		form := &entity.Form{FirstName: "Applicant", Email: "a@b.co", JobID: &job.ID}
		if err := svc.Submit(form, "", ""); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	forms, err := svc.ListByAdmin(7)
	if err != nil {
		t.Fatalf("list by admin: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms for admin 7, want 2", len(forms))
	}
	for _, form := range forms {
		if form.AdminID == nil || *form.AdminID != 7 {
			t.Errorf("form %d stamped for admin %v, want 7", form.ID, form.AdminID)
		}
	}
}

func TestDecodeCV(t *testing.T) {
	raw := []byte("%PDF-1.4 content")
	b64 := base64.StdEncoding.EncodeToString(raw)

	got, err := decodeCV(b64, "application/pdf")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != string(raw) {
		t.Error("decoded bytes differ")
	}

	// data URL ก็รับ
	got, err = decodeCV("data:application/pdf;base64,"+b64, "application/pdf")
	if err != nil {
		t.Fatalf("decode data url: %v", err)
	}
	if string(got) != string(raw) {
		t.Error("data url bytes differ")
	}

	if _, err := decodeCV(b64, "image/png"); err == nil {
		t.Error("png accepted as cv")
	}
	if _, err := decodeCV("!!!not base64!!!", "application/pdf"); err == nil {
		t.Error("garbage base64 accepted")
	}
}
