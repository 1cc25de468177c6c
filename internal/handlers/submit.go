package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/services"
	"github.com/vouchly-dev/vouchly/internal/types"
	"github.com/vouchly-dev/vouchly/internal/validation"
	"gorm.io/gorm"
)

// Public endpoints keyed by a project's share token. No session required;
// inactive projects behave exactly like missing ones.

func findActiveProjectByShareID(ctx *gin.Context) (models.Project, bool) {
	shareID := ctx.Param("share_id")

	if shareID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Share ID is required"})
		return models.Project{}, false
	}

	var project models.Project

	if err := db.DB.Where("share_id = ? AND active = ?", shareID, true).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid or inactive testimonial form"})
		} else {
			log.Printf("Failed to look up share ID %s: %v", shareID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch form"})
		}
		return models.Project{}, false
	}

	return project, true
}

// GetSubmissionForm returns what the public form needs to render itself.
func GetSubmissionForm(ctx *gin.Context) {
	project, ok := findActiveProjectByShareID(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"project": gin.H{
			"name":          project.Name,
			"description":   project.Description,
			"form_settings": project.GetFormSettings(),
			"theme":         project.GetWidgetSettings().Theme,
		},
	})
}

func clientIP(ctx *gin.Context) string {
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := ctx.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return ctx.ClientIP()
}

// SubmitTestimonial accepts an unauthenticated submission. Whether it lands
// as pending or approved is decided by the project's requireApproval setting.
func SubmitTestimonial(ctx *gin.Context) {
	var body validation.TestimonialInput

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, ok := findActiveProjectByShareID(ctx)
	if !ok {
		return
	}

	input, fieldErrors := validation.ValidateTestimonial(body)

	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErrors})
		return
	}

	status := types.StatusApproved
	if project.GetFormSettings().RequireApproval {
		status = types.StatusPending
	}

	testimonial := models.Testimonial{
		OwnerID:     project.OwnerID,
		ProjectID:   project.ID,
		Name:        input.Name,
		Email:       input.Email,
		Rating:      input.Rating,
		Testimonial: input.Testimonial,
		Status:      status,
		IPAddress:   clientIP(ctx),
		UserAgent:   ctx.GetHeader("User-Agent"),
	}

	if input.Company != nil {
		testimonial.Company = *input.Company
	}

	if input.Position != nil {
		testimonial.Position = *input.Position
	}

	if input.Photo != nil {
		testimonial.Photo = *input.Photo
	}

	if input.Video != nil {
		testimonial.Video = *input.Video
	}

	if err := db.DB.Create(&testimonial).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create testimonial: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimonial"})
		return
	}

	// Submission bumps the total only; approved/rejected counts are rebuilt
	// on the next moderation action.
	stats := project.GetStats()
	stats.TotalSubmissions++

	if err := project.SetStats(stats); err == nil {
		if err := db.DB.Model(&project).Update("stats", project.Stats).Error; err != nil {
			log.Printf("Failed to update stats for project %d: %v", project.ID, err)
		}
	}

	BroadcastRefresh(strconv.FormatUint(uint64(project.ID), 10))

	go func() {
		var owner models.User
		if err := db.DB.First(&owner, project.OwnerID).Error; err != nil {
			return
		}
		if err := services.SendNewTestimonialNotification(owner, project, testimonial); err != nil {
			log.Printf("Failed to send new testimonial notification: %v", err)
		}
	}()

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Thank you! Your testimonial has been submitted.",
		"testimonial": gin.H{
			"id":     testimonial.ID,
			"status": testimonial.Status,
		},
	})
}
