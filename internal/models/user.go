package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vouchly-dev/vouchly/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null" json:"-"`
	Company       string
	Website       string
	Avatar        string
	Plan          string         `gorm:"not null;default:free"`
	Notifications datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Projects     []Project     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Testimonials []Testimonial `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// BeforeSave enforces the persisted-field constraints that request validation
// does not fully cover: required fields, length caps, email normalization.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if len([]rune(u.Name)) > 60 {
		return fmt.Errorf("%w: name cannot be more than 60 characters", ErrValidation)
	}

	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if u.PasswordHash == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	if len([]rune(u.Company)) > 100 {
		return fmt.Errorf("%w: company cannot be more than 100 characters", ErrValidation)
	}

	switch u.Plan {
	case "":
		u.Plan = types.PlanFree
	case types.PlanFree, types.PlanPro, types.PlanEnterprise:
	default:
		return fmt.Errorf("%w: invalid plan %q", ErrValidation, u.Plan)
	}

	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if len(u.Notifications) == 0 {
		raw, err := json.Marshal(types.DefaultNotificationSettings())
		if err != nil {
			return err
		}
		u.Notifications = raw
	}
	return nil
}

// NotificationSettings decodes the stored jsonb, falling back to defaults if
// the column is empty or unreadable.
func (u *User) NotificationSettings() types.NotificationSettings {
	settings := types.DefaultNotificationSettings()

	if len(u.Notifications) > 0 {
		if err := json.Unmarshal(u.Notifications, &settings); err != nil {
			return types.DefaultNotificationSettings()
		}
	}

	return settings
}

func (u *User) SetNotificationSettings(settings types.NotificationSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	u.Notifications = raw
	return nil
}
