// controllers/payment_controller.go
package controllers

import (
	"strconv"
	"strings"

	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// ====== Request DTO ======
type CreateOrderReq struct {
	PlanName string `json:"planName" binding:"required"`
}

type VerifyPaymentReq struct {
	RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySignature string `json:"razorpaySignature" binding:"required"`
}

func (ctl *PaymentController) CreateOrder(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Payments.CreateOrder(userID, req.PlanName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

func (ctl *PaymentController) Verify(c *gin.Context) {
	var req VerifyPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := ctl.Payments.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, payment)
}

func (ctl *PaymentController) MyPayments(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	payments, err := ctl.Payments.ListByUser(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}

// ====== report ฝั่ง super admin ======

func (ctl *PaymentController) ListAll(c *gin.Context) {
	payments, err := ctl.Payments.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}

func (ctl *PaymentController) ListByStatus(c *gin.Context) {
	payments, err := ctl.Payments.ListByStatus(strings.ToUpper(c.Param("status")))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": payments})
}

func (ctl *PaymentController) ListByPlan(c *gin.Context) {
	planID, _ := strconv.Atoi(c.Param("id"))
	payments, err := ctl.Payments.ListByPlan(uint(planID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}

func (ctl *PaymentController) UsersInPlan(c *gin.Context) {
	planID, _ := strconv.Atoi(c.Param("id"))
	users, err := ctl.Payments.UsersEnrolledInPlan(uint(planID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}
