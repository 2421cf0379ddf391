package services

import (
	"errors"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

func newInternshipFixture(t *testing.T) (*InternshipService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewInternshipService(repository.NewInternshipRepository(db), repository.NewAdminRepository(db)), db
}

func seedOwnedInternship(t *testing.T, db *gorm.DB, adminID uint, title string) *entity.Internship {
	t.Helper()
	in := &entity.Internship{
		Title: title, Company: "Acme", Location: "Remote",
		Qualifications: "B.E.", Status: entity.PostStatusOpen, AdminID: adminID,
	}
	if err := db.Create(in).Error; err != nil {
		t.Fatalf("seed internship: %v", err)
	}
	return in
}

func TestInternshipListByAdminScopesToOwner(t *testing.T) {
	svc, db := newInternshipFixture(t)
	mine := seedNamedAdmin(t, db, "intern0001", "9000000021")
	other := seedNamedAdmin(t, db, "intern0002", "9000000022")

	seedOwnedInternship(t, db, mine.ID, "Mine")
	seedOwnedInternship(t, db, other.ID, "Theirs")

	items, err := svc.ListByAdmin(mine.ID)
	if err != nil {
		t.Fatalf("list by admin: %v", err)
	}
	if len(items) != 1 || items[0].AdminID != mine.ID {
		t.Errorf("got %d items for owner %d: %+v", len(items), mine.ID, items)
	}
}

func TestInternshipUpdateOwnerOnly(t *testing.T) {
	svc, db := newInternshipFixture(t)
	owner := seedNamedAdmin(t, db, "intern0003", "9000000023")
	intruder := seedNamedAdmin(t, db, "intern0004", "9000000024")
	in := seedOwnedInternship(t, db, owner.ID, "Guarded")

	updated, err := svc.Update(owner.ID, in.ID, &entity.Internship{
		Title: "Edited", Company: "Acme v2", Location: "Pune", Qualifications: "B.Tech",
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "Edited" || updated.Location != "Pune" {
		t.Errorf("content not replaced: %+v", updated)
	}
	if updated.AdminID != owner.ID || updated.Status != entity.PostStatusOpen {
		t.Errorf("owner/status touched: admin=%d status=%q", updated.AdminID, updated.Status)
	}

	if _, err := svc.Update(intruder.ID, in.ID, &entity.Internship{Title: "X"}); !errors.Is(err, ErrNotPostOwner) {
		t.Errorf("non-owner update: got %v, want ErrNotPostOwner", err)
	}
}
