// controllers/user_controller.go
package controllers

import (
	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/middlewares"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
	Cfg   *configs.Config
}

func NewUserController(users *services.UserService, cfg *configs.Config) *UserController {
	return &UserController{Users: users, Cfg: cfg}
}

// ====== Request DTO ======
type RegisterUserReq struct {
	UserName string `json:"userName" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	EmailID  string `json:"emailId" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender"`
	MobileNo string `json:"mobileNo" binding:"required"`
}

type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	Otp         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (ctl *UserController) Register(c *gin.Context) {
	var req RegisterUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !utils.ValidUsername(req.UserName) {
		resp.BadRequest(c, "invalid username")
		return
	}
	if !utils.ValidPhone(req.MobileNo) {
		resp.BadRequest(c, "invalid mobile number")
		return
	}

	user := entity.User{
		UserName: req.UserName,
		FullName: req.FullName,
		EmailID:  req.EmailID,
		Password: req.Password,
		Gender:   req.Gender,
		MobileNo: req.MobileNo,
	}
	if err := ctl.Users.Register(&user); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID})
}

func (ctl *UserController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Users.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := utils.GenerateToken(user.ID, middlewares.RoleUser, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, TokenResponse{Token: token, Role: middlewares.RoleUser, ID: user.ID})
}

func (ctl *UserController) Me(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	user, err := ctl.Users.GetByID(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var upd services.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Users.Update(userID, upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if err := ctl.Users.Delete(userID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": userID})
}

// ====== forgot / reset password ======

func (ctl *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Users.ForgotPassword(req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "OTP sent to your email."})
}

func (ctl *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Users.ResetPassword(req.Email, req.Otp, req.NewPassword); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Password reset successful."})
}
