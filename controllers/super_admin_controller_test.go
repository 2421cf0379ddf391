package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newControllerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Admin{}, &entity.SuperAdmin{},
		&entity.PendingPost{}, &entity.Job{}, &entity.Internship{},
		&entity.Form{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
}

func newModerationService(t *testing.T, db *gorm.DB) *services.ModerationService {
	t.Helper()
	return services.NewModerationService(
		repository.NewAdminRepository(db),
		repository.NewPendingPostRepository(db),
		repository.NewJobRepository(db),
		repository.NewInternshipRepository(db),
		services.LogNotifier{},
	)
}

// ยัด draft เข้าคิวผ่านทาง service จริง
func queuePendingJob(t *testing.T, db *gorm.DB, moderation *services.ModerationService) uint {
	t.Helper()
	admin := &entity.Admin{
		Name: "Recruiter", Username: "recruiter", Password: "hashed",
		Email: "r@example.com", MobileNo: "9000000001",
		Approved: true, Enabled: true,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	id, err := moderation.SubmitJob(&entity.Job{Title: "Backend Engineer", Company: "Acme"}, admin.ID)
	if err != nil {
		t.Fatalf("queue draft: %v", err)
	}
	return id
}

func TestDecidePostRequiresExplicitApproved(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newControllerDB(t)
	moderation := newModerationService(t, db)
	ctl := NewSuperAdminController(services.NewSuperAdminService(repository.NewSuperAdminRepository(db)), moderation, testConfig())

	r := gin.New()
	r.PATCH("/superadmin/pending-posts/:id", ctl.DecidePost)

	queuePendingJob(t, db, moderation)

	// ไม่ส่ง approved / ส่งค่าที่สะกดผิด — ต้อง 400 และ draft ห้ามหาย
	for _, query := range []string{"", "?approved=True", "?approved=yes", "?aproved=false"} {
		req := httptest.NewRequest(http.MethodPatch, "/superadmin/pending-posts/1"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, w.Code)
		}
		var count int64
		db.Model(&entity.PendingPost{}).Count(&count)
		if count != 1 {
			t.Fatalf("query %q destroyed the draft (pending rows = %d)", query, count)
		}
	}

	// คำสั่งชัดเจนถึงทำงาน
	req := httptest.NewRequest(http.MethodPatch, "/superadmin/pending-posts/1?approved=false", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("explicit reject: status = %d body = %s", w.Code, w.Body.String())
	}
	var count int64
	db.Model(&entity.PendingPost{}).Count(&count)
	if count != 0 {
		t.Errorf("pending rows = %d after explicit reject, want 0", count)
	}
}

func TestDecidePostExplicitApprovePublishes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newControllerDB(t)
	moderation := newModerationService(t, db)
	ctl := NewSuperAdminController(services.NewSuperAdminService(repository.NewSuperAdminRepository(db)), moderation, testConfig())

	r := gin.New()
	r.PATCH("/superadmin/pending-posts/:id", ctl.DecidePost)

	queuePendingJob(t, db, moderation)

	req := httptest.NewRequest(http.MethodPatch, "/superadmin/pending-posts/1?approved=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: status = %d body = %s", w.Code, w.Body.String())
	}

	var jobCount int64
	db.Model(&entity.Job{}).Count(&jobCount)
	if jobCount != 1 {
		t.Errorf("job rows = %d after approve, want 1", jobCount)
	}
}
