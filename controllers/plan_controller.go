// controllers/plan_controller.go
package controllers

import (
	"strconv"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/pkg/resp"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

// ====== Public ======

func (ctl *PlanController) List(c *gin.Context) {
	plans, err := ctl.Plans.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": plans})
}

func (ctl *PlanController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	plan, err := ctl.Plans.GetByID(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, plan)
}

// ====== Super admin ======

func (ctl *PlanController) Create(c *gin.Context) {
	var plan entity.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Plans.Create(&plan); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, plan)
}

func (ctl *PlanController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var plan entity.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := ctl.Plans.Update(uint(id), &plan)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, updated)
}

func (ctl *PlanController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Plans.Delete(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
