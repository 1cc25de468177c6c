package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/services"
	"github.com/vouchly-dev/vouchly/internal/types"
	"github.com/vouchly-dev/vouchly/internal/utils"
	"gorm.io/gorm"
)

// ModerateTestimonialRequest carries the owner's moderation action. Both
// fields are optional; absent means unchanged.
type ModerateTestimonialRequest struct {
	Status   *string `json:"status"`
	Featured *bool   `json:"featured"`
}

func testimonialResponse(testimonial models.Testimonial) types.TestimonialResponse {
	return types.TestimonialResponse{
		ID:          testimonial.ID,
		ProjectID:   testimonial.ProjectID,
		Name:        testimonial.Name,
		Email:       testimonial.Email,
		Company:     testimonial.Company,
		Position:    testimonial.Position,
		Rating:      testimonial.Rating,
		Testimonial: testimonial.Testimonial,
		Photo:       testimonial.Photo,
		Video:       testimonial.Video,
		Status:      testimonial.Status,
		Featured:    testimonial.Featured,
		ApprovedAt:  testimonial.ApprovedAt,
		CreatedAt:   testimonial.CreatedAt,
	}
}

func isValidStatus(status string) bool {
	switch status {
	case types.StatusPending, types.StatusApproved, types.StatusRejected:
		return true
	}
	return false
}

// ListProjectTestimonials returns a project's testimonials, newest first,
// optionally filtered by ?status=.
func ListProjectTestimonials(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := findOwnedProject(ctx, projectID, userID)
	if !ok {
		return
	}

	query := db.DB.Where("project_id = ?", project.ID)

	if status := ctx.Query("status"); status != "" && status != "all" {
		if !isValidStatus(status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var testimonials []models.Testimonial

	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}

	response := make([]types.TestimonialResponse, 0, len(testimonials))

	for _, testimonial := range testimonials {
		response = append(response, testimonialResponse(testimonial))
	}

	ctx.JSON(http.StatusOK, response)
}

// ListTestimonials returns every testimonial across the user's projects, for
// the all-projects moderation view.
func ListTestimonials(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := db.DB.Where("owner_id = ?", userID)

	if status := ctx.Query("status"); status != "" && status != "all" {
		if !isValidStatus(status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	if projectIDStr := ctx.Query("project_id"); projectIDStr != "" {
		projectID, err := strconv.ParseUint(projectIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Project ID"})
			return
		}
		query = query.Where("project_id = ?", projectID)
	}

	var testimonials []models.Testimonial

	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}

	response := make([]types.TestimonialResponse, 0, len(testimonials))

	for _, testimonial := range testimonials {
		response = append(response, testimonialResponse(testimonial))
	}

	ctx.JSON(http.StatusOK, response)
}

// ModerateTestimonial applies an approve/reject/feature action, then rebuilds
// the project's stats from the testimonial table.
func ModerateTestimonial(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, testimonialID, err := utils.GetProjectTestimonialID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body ModerateTestimonialRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Status == nil && body.Featured == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if body.Status != nil && !isValidStatus(*body.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	project, ok := findOwnedProject(ctx, projectID, userID)
	if !ok {
		return
	}

	var testimonial models.Testimonial

	if err := db.DB.Where("id = ? AND project_id = ?", testimonialID, project.ID).First(&testimonial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonial"})
		}
		return
	}

	approved := false

	if body.Status != nil && *body.Status != testimonial.Status {
		testimonial.Status = *body.Status

		if *body.Status == types.StatusApproved {
			now := time.Now()
			testimonial.ApprovedAt = &now
			approved = true
		}
	}

	if body.Featured != nil {
		testimonial.Featured = *body.Featured
	}

	if err := db.DB.Save(&testimonial).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update testimonial %d: %v", testimonial.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}

	if _, err := services.RecomputeProjectStats(project.ID); err != nil {
		log.Printf("Failed to recompute stats for project %d: %v", project.ID, err)
	}

	BroadcastRefresh(strconv.FormatUint(uint64(project.ID), 10))

	if approved {
		go func() {
			var owner models.User
			if err := db.DB.First(&owner, userID).Error; err != nil {
				return
			}
			if err := services.SendApprovalNotification(owner, project, testimonial); err != nil {
				log.Printf("Failed to send approval notification: %v", err)
			}
		}()
	}

	ctx.JSON(http.StatusOK, testimonialResponse(testimonial))
}

// DeleteTestimonial removes one testimonial and rebuilds the project stats.
func DeleteTestimonial(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, testimonialID, err := utils.GetProjectTestimonialID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := findOwnedProject(ctx, projectID, userID)
	if !ok {
		return
	}

	var testimonial models.Testimonial

	if err := db.DB.Where("id = ? AND project_id = ?", testimonialID, project.ID).First(&testimonial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonial"})
		}
		return
	}

	if err := db.DB.Delete(&testimonial).Error; err != nil {
		log.Printf("Failed to delete testimonial %d: %v", testimonial.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}

	if _, err := services.RecomputeProjectStats(project.ID); err != nil {
		log.Printf("Failed to recompute stats for project %d: %v", project.ID, err)
	}

	BroadcastRefresh(strconv.FormatUint(uint64(project.ID), 10))

	ctx.Status(http.StatusNoContent)
}
