package services

import (
	"testing"

	"github.com/vouchly-dev/vouchly/internal/types"
)

func TestFoldStatusCounts(t *testing.T) {
	counts := []StatusCount{
		{Status: types.StatusApproved, Count: 4},
		{Status: types.StatusRejected, Count: 2},
		{Status: types.StatusPending, Count: 3},
	}

	stats := FoldStatusCounts(counts)

	if stats.TotalSubmissions != 9 {
		t.Errorf("expected total 9, got %d", stats.TotalSubmissions)
	}

	if stats.ApprovedCount != 4 {
		t.Errorf("expected approved 4, got %d", stats.ApprovedCount)
	}

	if stats.RejectedCount != 2 {
		t.Errorf("expected rejected 2, got %d", stats.RejectedCount)
	}
}

func TestFoldStatusCountsEmpty(t *testing.T) {
	stats := FoldStatusCounts(nil)

	if stats.TotalSubmissions != 0 || stats.ApprovedCount != 0 || stats.RejectedCount != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestPendingCountDerived(t *testing.T) {
	stats := types.ProjectStats{
		TotalSubmissions: 9,
		ApprovedCount:    4,
		RejectedCount:    2,
	}

	if got := PendingCount(stats); got != 3 {
		t.Errorf("expected pending 3, got %d", got)
	}
}

// Moving one testimonial from pending to approved must raise the approved
// count by one and lower the derived pending count by one, with the total
// unchanged.
func TestFoldStatusCountsAfterApproval(t *testing.T) {
	before := FoldStatusCounts([]StatusCount{
		{Status: types.StatusPending, Count: 3},
		{Status: types.StatusApproved, Count: 4},
		{Status: types.StatusRejected, Count: 2},
	})

	after := FoldStatusCounts([]StatusCount{
		{Status: types.StatusPending, Count: 2},
		{Status: types.StatusApproved, Count: 5},
		{Status: types.StatusRejected, Count: 2},
	})

	if after.TotalSubmissions != before.TotalSubmissions {
		t.Errorf("total changed: %d -> %d", before.TotalSubmissions, after.TotalSubmissions)
	}

	if after.ApprovedCount != before.ApprovedCount+1 {
		t.Errorf("expected approved to rise by 1: %d -> %d", before.ApprovedCount, after.ApprovedCount)
	}

	if PendingCount(after) != PendingCount(before)-1 {
		t.Errorf("expected pending to drop by 1: %d -> %d", PendingCount(before), PendingCount(after))
	}
}
