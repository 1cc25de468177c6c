package services

import (
	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/types"
)

type StatusCount struct {
	Status string
	Count  int64
}

// FoldStatusCounts collapses grouped status counts into project stats.
// totalSubmissions counts every testimonial regardless of status; the pending
// count is never stored and always derived as total - approved - rejected.
func FoldStatusCounts(counts []StatusCount) types.ProjectStats {
	var stats types.ProjectStats

	for _, c := range counts {
		stats.TotalSubmissions += c.Count

		switch c.Status {
		case types.StatusApproved:
			stats.ApprovedCount += c.Count
		case types.StatusRejected:
			stats.RejectedCount += c.Count
		}
	}

	return stats
}

// PendingCount derives the number of pending testimonials from stored stats.
func PendingCount(stats types.ProjectStats) int64 {
	return stats.TotalSubmissions - stats.ApprovedCount - stats.RejectedCount
}

// UserStatsSummary aggregates testimonial counts across all of a user's
// projects, for the dashboard and for report digests.
func UserStatsSummary(userID uint) (int64, types.ProjectStats, error) {
	var projectCount int64

	if err := db.DB.Model(&models.Project{}).Where("owner_id = ?", userID).Count(&projectCount).Error; err != nil {
		return 0, types.ProjectStats{}, err
	}

	var counts []StatusCount

	err := db.DB.Model(&models.Testimonial{}).
		Select("status, COUNT(*) as count").
		Where("owner_id = ?", userID).
		Group("status").
		Scan(&counts).Error

	if err != nil {
		return 0, types.ProjectStats{}, err
	}

	return projectCount, FoldStatusCounts(counts), nil
}

// RecomputeProjectStats counts the project's testimonials grouped by status
// and stores the result whole. Counts are always rebuilt from the testimonial
// table rather than adjusted incrementally, so any drift introduced out of
// band is corrected on the next moderation action.
func RecomputeProjectStats(projectID uint) (types.ProjectStats, error) {
	var counts []StatusCount

	err := db.DB.Model(&models.Testimonial{}).
		Select("status, COUNT(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&counts).Error

	if err != nil {
		return types.ProjectStats{}, err
	}

	stats := FoldStatusCounts(counts)

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		return types.ProjectStats{}, err
	}

	if err := project.SetStats(stats); err != nil {
		return types.ProjectStats{}, err
	}

	if err := db.DB.Model(&project).Update("stats", project.Stats).Error; err != nil {
		return types.ProjectStats{}, err
	}

	return stats, nil
}
