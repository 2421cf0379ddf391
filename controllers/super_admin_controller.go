// controllers/super_admin_controller.go
package controllers

import (
	"strconv"

	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/middlewares"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"github.com/gin-gonic/gin"
)

type SuperAdminController struct {
	SuperAdmins *services.SuperAdminService
	Moderation  *services.ModerationService
	Cfg         *configs.Config
}

func NewSuperAdminController(superAdmins *services.SuperAdminService, moderation *services.ModerationService, cfg *configs.Config) *SuperAdminController {
	return &SuperAdminController{SuperAdmins: superAdmins, Moderation: moderation, Cfg: cfg}
}

type RegisterSuperAdminReq struct {
	SuperAdminName string `json:"superAdminName" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
	Email          string `json:"email" binding:"required,email"`
}

func (ctl *SuperAdminController) Register(c *gin.Context) {
	var req RegisterSuperAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sa := entity.SuperAdmin{
		SuperAdminName: req.SuperAdminName,
		Username:       req.Username,
		Password:       req.Password,
		Email:          req.Email,
	}
	if err := ctl.SuperAdmins.Register(&sa); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": sa.ID})
}

func (ctl *SuperAdminController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sa, err := ctl.SuperAdmins.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := utils.GenerateToken(sa.ID, middlewares.RoleSuperAdmin, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, TokenResponse{Token: token, Role: middlewares.RoleSuperAdmin, ID: sa.ID})
}

func (ctl *SuperAdminController) Update(c *gin.Context) {
	id := utils.CurrentUserID(c)

	var upd services.SuperAdminUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sa, err := ctl.SuperAdmins.Update(id, upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sa)
}

func (ctl *SuperAdminController) Delete(c *gin.Context) {
	id := utils.CurrentUserID(c)
	if err := ctl.SuperAdmins.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ====== admin gating ======

func (ctl *SuperAdminController) ApproveAdmin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	admin, err := ctl.Moderation.ApproveAdmin(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, admin)
}

func (ctl *SuperAdminController) DisableAdmin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	admin, err := ctl.Moderation.DisableAdmin(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, admin)
}

// ====== คิว moderation ======

func (ctl *SuperAdminController) ListPendingPosts(c *gin.Context) {
	posts, err := ctl.Moderation.ListPendingPosts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": posts})
}

type DecideResponse struct {
	PendingPostID uint   `json:"pendingPostId"`
	Approved      bool   `json:"approved"`
	PublishedID   uint   `json:"publishedId,omitempty"`
	Message       string `json:"message"`
}

// DecidePost — ?approved=true|false ชี้ขาด draft ตัวเดียว
// reject ลบ draft ถาวร เลยบังคับให้ส่ง approved มาตรง ๆ ห้ามเดา default
func (ctl *SuperAdminController) DecidePost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var approved bool
	switch c.Query("approved") {
	case "true":
		approved = true
	case "false":
		approved = false
	default:
		resp.BadRequest(c, "approved must be exactly true or false")
		return
	}

	publishedID, err := ctl.Moderation.Decide(uint(id), approved)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	msg := "Post disapproved and deleted."
	if approved {
		msg = "Post approved, saved, and removed from pending posts."
	}
	resp.OK(c, DecideResponse{
		PendingPostID: uint(id),
		Approved:      approved,
		PublishedID:   publishedID,
		Message:       msg,
	})
}

// ====== รายชื่อ admin ตามสถานะ ======

func (ctl *SuperAdminController) ListAdmins(c *gin.Context) {
	var (
		admins []entity.Admin
		err    error
	)
	// ?approved= / ?enabled= เลือกกรองได้ทีละแกน
	switch {
	case c.Query("approved") != "":
		admins, err = ctl.Moderation.ListAdminsByApproved(c.Query("approved") == "true")
	case c.Query("enabled") != "":
		admins, err = ctl.Moderation.ListAdminsByEnabled(c.Query("enabled") == "true")
	default:
		admins, err = ctl.Moderation.ListAdmins()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": admins})
}
