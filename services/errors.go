package services

import "errors"

// Error ของ domain — controller map เป็น status code เอง
var (
	// gate check (ลำดับ: exists → approved → enabled)
	ErrAdminNotFound    = errors.New("admin not found")
	ErrAdminNotApproved = errors.New("admin not approved by super admin")
	ErrAdminNotEnabled  = errors.New("admin disabled by super admin")

	// คิว moderation — โดนใช้ทั้งกรณีไม่เจอและกรณีโดนตัดสินตัดหน้า
	ErrPendingPostNotFound = errors.New("pending post not found")

	ErrSuperAdminNotFound = errors.New("super admin not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job post not found")
	ErrInternshipNotFound = errors.New("internship post not found")
	ErrFormNotFound       = errors.New("form not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPaymentNotFound    = errors.New("payment not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotPostOwner       = errors.New("admin not authorized for this post")

	ErrOtpInvalid = errors.New("invalid otp")
	ErrOtpExpired = errors.New("otp expired")

	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
