// controllers/placement_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ลิงก์ placement / mock interview เป็นแค่ text+hyperlink
// เลยคุยกับ repository ตรง ๆ ไม่ต้องมี service คั่น

type PlacementController struct {
	Placements *repository.PlacementRepository
	Interviews *repository.MockInterviewRepository
}

func NewPlacementController(placements *repository.PlacementRepository, interviews *repository.MockInterviewRepository) *PlacementController {
	return &PlacementController{Placements: placements, Interviews: interviews}
}

type LinkReq struct {
	Text      string `json:"text" binding:"required"`
	Hyperlink string `json:"hyperlink" binding:"required,url"`
}

// ====== Placements ======

func (ctl *PlacementController) ListPlacements(c *gin.Context) {
	items, err := ctl.Placements.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ctl *PlacementController) CreatePlacement(c *gin.Context) {
	var req LinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Placement{Text: req.Text, Hyperlink: req.Hyperlink}
	if err := ctl.Placements.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

func (ctl *PlacementController) UpdatePlacement(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req LinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.Placements.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "placement not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	p.Text = req.Text
	p.Hyperlink = req.Hyperlink
	if err := ctl.Placements.Save(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

func (ctl *PlacementController) DeletePlacement(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Placements.DeleteByID(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ====== Mock interviews ======

func (ctl *PlacementController) ListMockInterviews(c *gin.Context) {
	items, err := ctl.Interviews.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ctl *PlacementController) CreateMockInterview(c *gin.Context) {
	var req LinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.MockInterview{Text: req.Text, Hyperlink: req.Hyperlink}
	if err := ctl.Interviews.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

func (ctl *PlacementController) UpdateMockInterview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req LinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Interviews.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "mock interview not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	m.Text = req.Text
	m.Hyperlink = req.Hyperlink
	if err := ctl.Interviews.Save(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

func (ctl *PlacementController) DeleteMockInterview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Interviews.DeleteByID(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
