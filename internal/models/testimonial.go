package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/vouchly-dev/vouchly/internal/types"
	"gorm.io/gorm"
)

type Testimonial struct {
	gorm.Model

	OwnerID   uint `gorm:"not null;index:idx_testimonials_owner_status"`
	ProjectID uint `gorm:"not null;index:idx_testimonials_project_status"`

	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Company     string
	Position    string
	Rating      int    `gorm:"not null"`
	Testimonial string `gorm:"not null"`

	// Media URLs
	Photo string
	Video string

	Status   string `gorm:"not null;default:pending;index:idx_testimonials_owner_status;index:idx_testimonials_project_status"`
	Featured bool   `gorm:"not null;default:false"`

	// Captured at public submission for spam auditing.
	IPAddress string
	UserAgent string

	ApprovedAt *time.Time

	// Relationships
	Owner   User    `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (t *Testimonial) BeforeSave(tx *gorm.DB) error {
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))

	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if len([]rune(t.Name)) > 100 {
		return fmt.Errorf("%w: name cannot be more than 100 characters", ErrValidation)
	}

	if t.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if textLen := len([]rune(t.Testimonial)); textLen < 10 || textLen > 1000 {
		return fmt.Errorf("%w: testimonial must be between 10 and 1000 characters", ErrValidation)
	}

	switch t.Status {
	case "":
		t.Status = types.StatusPending
	case types.StatusPending, types.StatusApproved, types.StatusRejected:
	default:
		return fmt.Errorf("%w: invalid status %q", ErrValidation, t.Status)
	}

	return nil
}
