package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/services"
	"github.com/vouchly-dev/vouchly/internal/types"
	"github.com/vouchly-dev/vouchly/internal/utils"
	"github.com/vouchly-dev/vouchly/internal/validation"
	"gorm.io/gorm"
)

type UpdateProjectRequest struct {
	Name           string                          `json:"name"`
	Description    *string                         `json:"description"`
	Website        *string                         `json:"website"`
	Active         *bool                           `json:"active"`
	FormSettings   *types.FormSettings             `json:"form_settings"`
	WidgetSettings *validation.WidgetSettingsInput `json:"widget_settings"`
}

type DashboardResponse struct {
	Project            types.ProjectResponse       `json:"project"`
	PendingCount       int64                       `json:"pending_count"`
	RecentTestimonials []types.TestimonialResponse `json:"recent_testimonials"`
}

func projectResponse(project models.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		Website:        project.Website,
		ShareID:        project.ShareID,
		Active:         project.Active,
		FormSettings:   project.GetFormSettings(),
		WidgetSettings: project.GetWidgetSettings(),
		Stats:          project.GetStats(),
		CreatedAt:      project.CreatedAt,
	}
}

// findOwnedProject scopes the lookup to the requesting user. A project owned
// by someone else is indistinguishable from a missing one.
func findOwnedProject(ctx *gin.Context, projectID uint64, userID uint) (models.Project, bool) {
	var project models.Project

	if err := db.DB.Where("id = ? AND owner_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to retrieve project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return models.Project{}, false
	}

	return project, true
}

func CreateProject(ctx *gin.Context) {
	var body validation.ProjectInput

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	input, fieldErrors := validation.ValidateProject(body)

	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErrors})
		return
	}

	project := models.Project{
		OwnerID: userID,
		Name:    input.Name,
		Active:  true,
	}

	if input.Description != nil {
		project.Description = *input.Description
	}

	if input.Website != nil {
		project.Website = *input.Website
	}

	if err := db.DB.Create(&project).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(project))
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := db.DB.Where("owner_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProject(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, projectResponse(project))
}

func UpdateProject(ctx *gin.Context) {
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

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, ok := findOwnedProject(ctx, projectID, userID)
	if !ok {
		return
	}

	if body.Name != "" {
		project.Name = body.Name
	}

	if body.Description != nil {
		project.Description = *body.Description
	}

	if body.Website != nil {
		project.Website = *body.Website
	}

	if body.Active != nil {
		project.Active = *body.Active
	}

	if body.FormSettings != nil {
		if err := project.SetFormSettings(*body.FormSettings); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form settings"})
			return
		}
	}

	if body.WidgetSettings != nil {
		input, fieldErrors := validation.ValidateWidgetSettings(*body.WidgetSettings)

		if len(fieldErrors) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErrors})
			return
		}

		settings := types.WidgetSettings{
			Layout: input.Layout,
			Theme: types.WidgetTheme{
				PrimaryColor:    input.Theme.PrimaryColor,
				BackgroundColor: input.Theme.BackgroundColor,
				TextColor:       input.Theme.TextColor,
				FontFamily:      input.Theme.FontFamily,
			},
			ShowRatings:     input.ShowRatings,
			ShowPhotos:      input.ShowPhotos,
			ShowCompany:     input.ShowCompany,
			MaxTestimonials: input.MaxTestimonials,
		}

		if err := project.SetWidgetSettings(settings); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid widget settings"})
			return
		}
	}

	if err := db.DB.Save(&project).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project))
}

// DeleteProject removes the project and every testimonial submitted to it.
func DeleteProject(ctx *gin.Context) {
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

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Testimonial{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})

	if err != nil {
		log.Printf("Failed to delete project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func GetDashboard(ctx *gin.Context) {
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

	var recent []models.Testimonial

	if err := db.DB.Where("project_id = ?", project.ID).
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}

	recentResponse := make([]types.TestimonialResponse, 0, len(recent))
	for _, testimonial := range recent {
		recentResponse = append(recentResponse, testimonialResponse(testimonial))
	}

	stats := project.GetStats()

	ctx.JSON(http.StatusOK, DashboardResponse{
		Project:            projectResponse(project),
		PendingCount:       services.PendingCount(stats),
		RecentTestimonials: recentResponse,
	})
}

// GetEmbedCode returns the copyable script snippet that renders the project's
// widget on an external site.
func GetEmbedCode(ctx *gin.Context) {
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

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:3000"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"share_id":   project.ShareID,
		"embed_code": BuildEmbedSnippet(clientURL, project.ShareID),
	})
}

// BuildEmbedSnippet renders the widget script tag for a share token.
func BuildEmbedSnippet(clientURL, shareID string) string {
	return fmt.Sprintf(`<script src="%s/widget.js" data-vouchly-widget="%s" async></script>`, clientURL, shareID)
}
