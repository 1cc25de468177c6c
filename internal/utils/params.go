package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetProjectID(ctx *gin.Context) (uint64, error) {
	projectIDStr := ctx.Param("project_id")

	if projectIDStr == "" {
		return 0, errors.New("Project ID not found")
	}

	projectID, err := strconv.ParseUint(projectIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Project ID")
	}

	return projectID, nil
}

func GetTestimonialID(ctx *gin.Context) (uint64, error) {
	testimonialIDStr := ctx.Param("testimonial_id")

	if testimonialIDStr == "" {
		return 0, errors.New("Testimonial ID not found")
	}

	testimonialID, err := strconv.ParseUint(testimonialIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Testimonial ID")
	}

	return testimonialID, nil
}

func GetProjectTestimonialID(ctx *gin.Context) (uint64, uint64, error) {
	projectID, err := GetProjectID(ctx)

	if err != nil {
		return 0, 0, err
	}

	testimonialID, err := GetTestimonialID(ctx)

	if err != nil {
		return 0, 0, err
	}

	return projectID, testimonialID, nil
}
