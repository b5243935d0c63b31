// Package progress contains the training milestone endpoints
package progress

import (
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/apperr"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type milestoneBody struct {
	Skill  string `json:"skill" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func MilestoneList(c *gin.Context, d *internal.Deps) {
	milestones := []model.Milestone{}

	err := d.DB.WithContext(c.Request.Context()).
		Order("created_at asc").
		Find(&milestones).
		Error
	if err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to list milestones, %w", err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Training progress data",
		"milestones": milestones,
	})
}

func MilestoneCreate(c *gin.Context, d *internal.Deps) {
	var data milestoneBody
	if !respond.Bind(c, &data, "Skill and status required") {
		return
	}

	milestone := model.Milestone{
		Skill:  data.Skill,
		Status: data.Status,
	}

	if err := d.DB.WithContext(c.Request.Context()).Create(&milestone).Error; err != nil {
		respond.Error(c, apperr.Internal(fmt.Errorf("failed to add milestone, %w", err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Milestone added successfully",
		"milestone": milestone,
	})
}
