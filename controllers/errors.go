package controllers

import (
	"errors"
	"strings"

	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/gin-gonic/gin"
)

// map error ของ service เป็น HTTP ทีเดียว จะได้ไม่เขียน switch ซ้ำทุก handler
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdminNotFound),
		errors.Is(err, services.ErrSuperAdminNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrInternshipNotFound),
		errors.Is(err, services.ErrFormNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrPendingPostNotFound):
		resp.NotFound(c, err.Error())

	// gate fail ต้องแยกกันให้ client render "pending approval" กับ "disabled" ต่างกันได้
	case errors.Is(err, services.ErrAdminNotApproved),
		errors.Is(err, services.ErrAdminNotEnabled),
		errors.Is(err, services.ErrNotPostOwner):
		resp.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())

	case errors.Is(err, services.ErrOtpInvalid),
		errors.Is(err, services.ErrOtpExpired),
		errors.Is(err, services.ErrSignatureMismatch):
		resp.BadRequest(c, err.Error())

	case isDuplicateErr(err):
		resp.Conflict(c, "duplicate value for a unique field")

	default:
		resp.ServerError(c, err)
	}
}

// gorm ไม่มี sentinel สำหรับ unique violation — เช็คจาก message ของ driver
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
