// controllers/form_controller.go
package controllers

import (
	"strconv"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/gin-gonic/gin"
)

type FormController struct {
	Forms *services.FormService
}

func NewFormController(forms *services.FormService) *FormController {
	return &FormController{Forms: forms}
}

// ====== Request DTO ======
type SubmitFormReq struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" binding:"required,email"`
	Country      string `json:"country"`
	MobileNumber string `json:"mobileNumber"`
	Location     string `json:"location"`

	JobID        *uint `json:"jobId"`
	InternshipID *uint `json:"internshipId"`

	// CV แนบเป็น base64 (หรือ data URL)
	CV     string `json:"cv"`
	CVType string `json:"cvType"`
}

func (ctl *FormController) Submit(c *gin.Context) {
	var req SubmitFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := entity.Form{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Country:      req.Country,
		MobileNumber: req.MobileNumber,
		Location:     req.Location,
		JobID:        req.JobID,
		InternshipID: req.InternshipID,
	}
	if err := ctl.Forms.Submit(&form, req.CV, req.CVType); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": form.ID, "message": "Application submitted."})
}

func (ctl *FormController) ListByJob(c *gin.Context) {
	jobID, _ := strconv.Atoi(c.Param("id"))
	forms, err := ctl.Forms.ListByJob(uint(jobID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": forms})
}

func (ctl *FormController) ListByInternship(c *gin.Context) {
	internshipID, _ := strconv.Atoi(c.Param("id"))
	forms, err := ctl.Forms.ListByInternship(uint(internshipID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": forms})
}

// DownloadCV ส่งไฟล์ CV กลับตรง ๆ
func (ctl *FormController) DownloadCV(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	form, err := ctl.Forms.GetByID(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if len(form.CV) == 0 {
		resp.NotFound(c, "no cv attached")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=cv")
	c.Data(200, form.CVType, form.CV)
}
