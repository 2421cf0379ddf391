package services

import (
	"errors"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"gorm.io/gorm"
)

func newAdminFixture(t *testing.T) (*AdminService, *fakeNotifier, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	return NewAdminService(repository.NewAdminRepository(db), notifier, "super@example.com"), notifier, db
}

func TestAdminRegisterStartsUnapproved(t *testing.T) {
	svc, notifier, _ := newAdminFixture(t)

	admin := &entity.Admin{
		Name:     "Recruiter",
		Username: "recruiter1",
		Password: "Secret@123",
		Email:    "r1@example.com",
		MobileNo: "9000000001",
		// client พยายามยัด approved มาด้วย — ต้องโดนทับ
		Approved: true,
	}
	if err := svc.Register(admin); err != nil {
		t.Fatalf("register: %v", err)
	}

	if admin.Approved {
		t.Error("freshly registered admin must not be approved")
	}
	if !admin.Enabled {
		t.Error("freshly registered admin must be enabled")
	}
	if !utils.CheckPasswordHash("Secret@123", admin.Password) {
		t.Error("password not hashed")
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "super@example.com" {
		t.Errorf("review mail sent to %v, want super admin", notifier.sent)
	}
}

func TestAdminRegisterSurvivesMailFailure(t *testing.T) {
	svc, notifier, db := newAdminFixture(t)
	notifier.fail = true

	admin := &entity.Admin{
		Username: "recruiter2",
		Password: "Secret@123",
		Email:    "r2@example.com",
		MobileNo: "9000000002",
	}
	if err := svc.Register(admin); err != nil {
		t.Fatalf("register with broken mail: %v", err)
	}

	var count int64
	db.Model(&entity.Admin{}).Count(&count)
	if count != 1 {
		t.Errorf("admin rows = %d, want registration committed", count)
	}
}

func TestAdminLoginGate(t *testing.T) {
	svc, _, db := newAdminFixture(t)

	admin := &entity.Admin{
		Username: "recruiter3",
		Password: "Secret@123",
		Email:    "r3@example.com",
		MobileNo: "9000000003",
	}
	if err := svc.Register(admin); err != nil {
		t.Fatalf("register: %v", err)
	}

	// ยังไม่อนุมัติ
	if _, err := svc.Login("recruiter3", "Secret@123"); !errors.Is(err, ErrAdminNotApproved) {
		t.Errorf("unapproved login: got %v, want ErrAdminNotApproved", err)
	}
	// รหัสผิดต้องมาก่อน state
	if _, err := svc.Login("recruiter3", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: got %v, want ErrInvalidCredentials", err)
	}

	if err := db.Model(admin).Update("approved", true).Error; err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Login("recruiter3", "Secret@123"); err != nil {
		t.Errorf("approved login: %v", err)
	}

	if err := db.Model(admin).Update("enabled", false).Error; err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := svc.Login("recruiter3", "Secret@123"); !errors.Is(err, ErrAdminNotEnabled) {
		t.Errorf("disabled login: got %v, want ErrAdminNotEnabled", err)
	}
}

func TestAdminUpdateSkipsInvalidFields(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	admin := &entity.Admin{
		Name:     "Recruiter",
		Username: "recruiter4",
		Password: "Secret@123",
		Email:    "r4@example.com",
		MobileNo: "9000000004",
	}
	if err := svc.Register(admin); err != nil {
		t.Fatalf("register: %v", err)
	}

	goodName := "New Name"
	badEmail := "not-an-email"
	updated, err := svc.Update(admin.ID, AdminUpdate{Name: &goodName, Email: &badEmail})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != goodName {
		t.Errorf("name = %q, want %q", updated.Name, goodName)
	}
	if updated.Email != "r4@example.com" {
		t.Errorf("invalid email applied: %q", updated.Email)
	}
}
