// controllers/job_controller.go
package controllers

import (
	"strconv"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/Bhagwat-Patil/JobWebsite/utils"
	"github.com/gin-gonic/gin"
)

type JobController struct {
	Jobs *services.JobService
}

func NewJobController(jobs *services.JobService) *JobController {
	return &JobController{Jobs: jobs}
}

// ====== Public ======

func (ctl *JobController) List(c *gin.Context) {
	// มี query ไหนสักอัน = search
	f := repository.JobFilter{
		Location:       c.Query("location"),
		Category:       c.Query("category"),
		EmploymentType: c.Query("employmentType"),
		WorkModel:      c.Query("workModel"),
		Status:         c.Query("status"),
	}
	jobs, err := ctl.Jobs.Search(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": jobs})
}

func (ctl *JobController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	job, err := ctl.Jobs.GetByID(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, job)
}

// ====== Admin (เจ้าของโพสต์) ======

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED"`
}

// ListMine โพสต์ที่ publish แล้วของตัวเอง — ไว้หา id ก่อน update/delete
func (ctl *JobController) ListMine(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	jobs, err := ctl.Jobs.ListByAdmin(adminID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": jobs})
}

// Update แก้เนื้อหาทั้งก้อน ใช้ DTO เดียวกับตอน submit
func (ctl *JobController) Update(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req JobDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	job, err := ctl.Jobs.Update(adminID, uint(id), &entity.Job{
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
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, job)
}

func (ctl *JobController) UpdateStatus(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	job, err := ctl.Jobs.UpdateStatus(adminID, uint(id), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, job)
}

func (ctl *JobController) Delete(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Jobs.Delete(adminID, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
