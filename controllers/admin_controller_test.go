package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newAdminRegisterRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newControllerDB(t)

	adminSvc := services.NewAdminService(repository.NewAdminRepository(db), services.LogNotifier{}, "super@example.com")
	formSvc := services.NewFormService(
		repository.NewFormRepository(db),
		repository.NewJobRepository(db),
		repository.NewInternshipRepository(db),
	)
	ctl := NewAdminController(adminSvc, newModerationService(t, db), formSvc, testConfig())

	r := gin.New()
	r.POST("/admin/register", ctl.Register)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRegisterValidatesFields(t *testing.T) {
	r, db := newAdminRegisterRouter(t)

	// mobile ไม่ใช่ 10 หลัก / username สั้นเกิน / name มีตัวเลข — ห้ามถึง DB
	bad := []string{
		`{"name":"Recruiter","username":"recruiter1","password":"Secret@123","email":"r@example.com","mobileNo":"12345"}`,
		`{"name":"Recruiter","username":"ab","password":"Secret@123","email":"r@example.com","mobileNo":"9000000001"}`,
		`{"name":"R3cruiter99!","username":"recruiter1","password":"Secret@123","email":"r@example.com","mobileNo":"9000000001"}`,
	}
	for i, body := range bad {
		w := postJSON(t, r, "/admin/register", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400 (body %s)", i, w.Code, w.Body.String())
		}
	}
	var count int64
	db.Model(&entity.Admin{}).Count(&count)
	if count != 0 {
		t.Fatalf("admin rows = %d, invalid registrations reached the database", count)
	}

	w := postJSON(t, r, "/admin/register",
		`{"name":"Recruiter","username":"recruiter1","password":"Secret@123","email":"r@example.com","mobileNo":"9000000001"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("valid registration: status = %d body = %s", w.Code, w.Body.String())
	}

	var admin entity.Admin
	if err := db.First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Approved {
		t.Error("registered admin must start unapproved")
	}
	if admin.MobileNo != "9000000001" {
		t.Errorf("mobile = %q", admin.MobileNo)
	}
}
