package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/types"
)

type WidgetTestimonial struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	Testimonial string `json:"testimonial"`
	Photo       string `json:"photo,omitempty"`
	Featured    bool   `json:"featured"`
}

type WidgetResponse struct {
	Project      string               `json:"project"`
	Settings     types.WidgetSettings `json:"settings"`
	Testimonials []WidgetTestimonial  `json:"testimonials"`
}

// GetWidget serves the embeddable widget payload: approved testimonials only,
// featured first, capped at the configured maximum. Display toggles decide
// which fields are included at all, so the embed never leaks data the owner
// has switched off.
func GetWidget(ctx *gin.Context) {
	project, ok := findActiveProjectByShareID(ctx)
	if !ok {
		return
	}

	settings := project.GetWidgetSettings()

	var testimonials []models.Testimonial

	if err := db.DB.Where("project_id = ? AND status = ?", project.ID, types.StatusApproved).
		Order("featured DESC, created_at DESC").
		Limit(settings.MaxTestimonials).
		Find(&testimonials).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch widget"})
		return
	}

	entries := make([]WidgetTestimonial, 0, len(testimonials))

	for _, testimonial := range testimonials {
		entry := WidgetTestimonial{
			Name:        testimonial.Name,
			Testimonial: testimonial.Testimonial,
			Featured:    testimonial.Featured,
		}

		if settings.ShowRatings {
			entry.Rating = testimonial.Rating
		}

		if settings.ShowPhotos {
			entry.Photo = testimonial.Photo
		}

		if settings.ShowCompany {
			entry.Company = testimonial.Company
			entry.Position = testimonial.Position
		}

		entries = append(entries, entry)
	}

	ctx.JSON(http.StatusOK, WidgetResponse{
		Project:      project.Name,
		Settings:     settings,
		Testimonials: entries,
	})
}
