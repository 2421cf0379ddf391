// controllers/internship_controller.go
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

type InternshipController struct {
	Internships *services.InternshipService
}

func NewInternshipController(internships *services.InternshipService) *InternshipController {
	return &InternshipController{Internships: internships}
}

// ====== Public ======

func (ctl *InternshipController) List(c *gin.Context) {
	f := repository.InternshipFilter{
		Location: c.Query("location"),
		Duration: c.Query("duration"),
		Status:   c.Query("status"),
	}
	items, err := ctl.Internships.Search(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ctl *InternshipController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	in, err := ctl.Internships.GetByID(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, in)
}

// ====== Admin (เจ้าของโพสต์) ======

func (ctl *InternshipController) ListMine(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	items, err := ctl.Internships.ListByAdmin(adminID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ctl *InternshipController) Update(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req InternshipDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in, err := ctl.Internships.Update(adminID, uint(id), &entity.Internship{
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
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, in)
}

func (ctl *InternshipController) UpdateStatus(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in, err := ctl.Internships.UpdateStatus(adminID, uint(id), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, in)
}

func (ctl *InternshipController) Delete(c *gin.Context) {
	adminID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Internships.Delete(adminID, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
