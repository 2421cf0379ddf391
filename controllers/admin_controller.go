// controllers/admin_controller.go
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

type AdminController struct {
	Admins     *services.AdminService
	Moderation *services.ModerationService
	Forms      *services.FormService
	Cfg        *configs.Config
}

func NewAdminController(admins *services.AdminService, moderation *services.ModerationService, forms *services.FormService, cfg *configs.Config) *AdminController {
	return &AdminController{Admins: admins, Moderation: moderation, Forms: forms, Cfg: cfg}
}

// ====== Request DTO ======
type RegisterAdminReq struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	MobileNo string `json:"mobileNo" binding:"required"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type JobDraftReq struct {
	Title              string          `json:"title" binding:"required"`
	Location           string          `json:"location"`
	Category           string          `json:"category"`
	EmploymentType     string          `json:"employmentType"`
	WorkModel          string          `json:"workModel"`
	Experience         string          `json:"experience"`
	Salary             float64         `json:"salary"`
	Skills             string          `json:"skills"`
	Company            string          `json:"company" binding:"required"`
	JobDescription     string          `json:"jobDescription"`
	OpeningStartDate   entity.DateOnly `json:"openingStartDate"`
	LastApplyDate      entity.DateOnly `json:"lastApplyDate"`
	NumberOfOpenings   int             `json:"numberOfOpenings"`
	Perks              string          `json:"perks"`
	CompanyDescription string          `json:"companyDescription"`
}

type InternshipDraftReq struct {
	Title              string          `json:"title" binding:"required"`
	Company            string          `json:"company" binding:"required"`
	Location           string          `json:"location" binding:"required"`
	Duration           string          `json:"duration"`
	Stipend            string          `json:"stipend"`
	Qualifications     string          `json:"qualifications" binding:"required"`
	Skills             string          `json:"skills"`
	Description        string          `json:"description"`
	OpeningStartDate   entity.DateOnly `json:"openingStartDate"`
	LastApplyDate      entity.DateOnly `json:"lastApplyDate"`
	NumberOfOpenings   int             `json:"numberOfOpenings"`
	Perks              string          `json:"perks"`
	CompanyDescription string          `json:"companyDescription"`
}

// ====== Response DTO ======
type SubmitResponse struct {
	PendingPostID uint   `json:"pendingPostId"`
	Message       string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    uint   `json:"id"`
}

// ====== สมัคร admin (เริ่ม unapproved เสมอ) ======
func (ctl *AdminController) Register(c *gin.Context) {
	var req RegisterAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !utils.NamePattern.MatchString(req.Name) {
		resp.BadRequest(c, "invalid name")
		return
	}
	if !utils.ValidUsername(req.Username) {
		resp.BadRequest(c, "invalid username")
		return
	}
	if !utils.ValidPhone(req.MobileNo) {
		resp.BadRequest(c, "invalid mobile number")
		return
	}

	admin := entity.Admin{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		MobileNo: req.MobileNo,
	}
	if err := ctl.Admins.Register(&admin); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": admin.ID, "approved": admin.Approved})
}

// ====== login (โดน gate approved/enabled ด้วย) ======
func (ctl *AdminController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	admin, err := ctl.Admins.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := utils.GenerateToken(admin.ID, middlewares.RoleAdmin, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, TokenResponse{Token: token, Role: middlewares.RoleAdmin, ID: admin.ID})
}

func (ctl *AdminController) Update(c *gin.Context) {
	adminID := utils.CurrentUserID(c)

	var upd services.AdminUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	admin, err := ctl.Admins.Update(adminID, upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, admin)
}

func (ctl *AdminController) Delete(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	if err := ctl.Admins.Delete(adminID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": adminID})
}

func (ctl *AdminController) Me(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	admin, err := ctl.Admins.GetByID(adminID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, admin)
}

// ====== ยื่น draft เข้าคิว moderation ======
func (ctl *AdminController) SubmitJob(c *gin.Context) {
	adminID := utils.CurrentUserID(c)

	var req JobDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	job := entity.Job{
		Title:              req.Title,
		Location:           req.Location,
		Category:           req.Category,
		EmploymentType:     req.EmploymentType,
		WorkModel:          req.WorkModel,
		Experience:         req.Experience,
		Salary:             req.Salary,
		Skills:             req.Skills,
		Company:            req.Company,
		JobDescription:     req.JobDescription,
		OpeningStartDate:   req.OpeningStartDate,
		LastApplyDate:      req.LastApplyDate,
		NumberOfOpenings:   req.NumberOfOpenings,
		Perks:              req.Perks,
		CompanyDescription: req.CompanyDescription,
	}
	pendingID, err := ctl.Moderation.SubmitJob(&job, adminID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, SubmitResponse{
		PendingPostID: pendingID,
		Message:       "Job post sent to super admin for approval.",
	})
}

func (ctl *AdminController) SubmitInternship(c *gin.Context) {
	adminID := utils.CurrentUserID(c)

	var req InternshipDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	internship := entity.Internship{
		Title:              req.Title,
		Company:            req.Company,
		Location:           req.Location,
		Duration:           req.Duration,
		Stipend:            req.Stipend,
		Qualifications:     req.Qualifications,
		Skills:             req.Skills,
		Description:        req.Description,
		OpeningStartDate:   req.OpeningStartDate,
		LastApplyDate:      req.LastApplyDate,
		NumberOfOpenings:   req.NumberOfOpenings,
		Perks:              req.Perks,
		CompanyDescription: req.CompanyDescription,
	}
	pendingID, err := ctl.Moderation.SubmitInternship(&internship, adminID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, SubmitResponse{
		PendingPostID: pendingID,
		Message:       "Internship post sent to super admin for approval.",
	})
}

// ====== ใบสมัครที่ยื่นเข้าโพสต์ของตัวเอง ======
func (ctl *AdminController) ListForms(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	forms, err := ctl.Forms.ListByAdmin(adminID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": forms})
}

func (ctl *AdminController) GetForm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	form, err := ctl.Forms.GetByID(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, form)
}
