package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"
	sig := signPayload("order_abc", "pay_xyz", secret)

	if !verifySignature("order_abc", "pay_xyz", sig, secret) {
		t.Error("valid signature rejected")
	}
	if verifySignature("order_abc", "pay_other", sig, secret) {
		t.Error("signature accepted for wrong payment id")
	}
	if verifySignature("order_abc", "pay_xyz", sig, "other_secret") {
		t.Error("signature accepted with wrong secret")
	}
	if verifySignature("order_abc", "pay_xyz", "deadbeef", secret) {
		t.Error("garbage signature accepted")
	}
	if verifySignature("order_abc", "pay_xyz", "", secret) {
		t.Error("empty signature accepted")
	}
}

// ===== report ฝั่ง super admin =====

func newPaymentFixture(t *testing.T) (*PaymentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewUserRepository(db),
		repository.NewPlanRepository(db),
		repository.NewPaymentRepository(db),
		"rzp_test_key", "rzp_test_secret",
	)
	return svc, db
}

func seedPayment(t *testing.T, db *gorm.DB, orderID, status string, userID, planID uint) {
	t.Helper()
	p := &entity.Payment{
		RazorpayOrderID: orderID,
		Amount:          499,
		Currency:        "INR",
		PaymentStatus:   status,
		UserID:          userID,
		PlanID:          planID,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed payment %s: %v", orderID, err)
	}
}

func TestPaymentReports(t *testing.T) {
	svc, db := newPaymentFixture(t)

	plan := &entity.Plan{Name: "Basic", Price: 499, Duration: "3 months"}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	otherPlan := &entity.Plan{Name: "Premium", Price: 999, Duration: "6 months"}
	if err := db.Create(otherPlan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	seedPayment(t, db, "order_1", entity.PaymentStatusSuccess, 1, plan.ID)
	seedPayment(t, db, "order_2", entity.PaymentStatusFailed, 2, plan.ID)
	seedPayment(t, db, "order_3", entity.PaymentStatusSuccess, 3, otherPlan.ID)

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all payments = %d, want 3", len(all))
	}

	succeeded, err := svc.ListByStatus(entity.PaymentStatusSuccess)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(succeeded) != 2 {
		t.Errorf("SUCCESS payments = %d, want 2", len(succeeded))
	}

	if _, err := svc.ListByStatus("PAID"); err == nil {
		t.Error("unknown status accepted")
	}

	byPlan, err := svc.ListByPlan(plan.ID)
	if err != nil {
		t.Fatalf("list by plan: %v", err)
	}
	if len(byPlan) != 2 {
		t.Errorf("plan payments = %d, want 2", len(byPlan))
	}
	if _, err := svc.ListByPlan(999); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("missing plan: got %v, want ErrPlanNotFound", err)
	}
}

func TestUsersEnrolledInPlan(t *testing.T) {
	svc, db := newPaymentFixture(t)

	plan := &entity.Plan{Name: "Basic", Price: 499, Duration: "3 months"}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	enrolled := &entity.User{UserName: "member1", EmailID: "m1@example.com", Password: "x", MobileNo: "9000000031", Status: "ACTIVE", PlanID: &plan.ID}
	free := &entity.User{UserName: "member2", EmailID: "m2@example.com", Password: "x", MobileNo: "9000000032", Status: "ACTIVE"}
	for _, u := range []*entity.User{enrolled, free} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	users, err := svc.UsersEnrolledInPlan(plan.ID)
	if err != nil {
		t.Fatalf("users in plan: %v", err)
	}
	if len(users) != 1 || users[0].UserName != "member1" {
		t.Errorf("enrolled users = %+v, want only member1", users)
	}
	if _, err := svc.UsersEnrolledInPlan(999); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("missing plan: got %v, want ErrPlanNotFound", err)
	}
}
