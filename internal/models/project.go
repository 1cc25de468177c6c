package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vouchly-dev/vouchly/internal/types"
	"github.com/vouchly-dev/vouchly/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model

	OwnerID     uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Website     string

	// Public, unguessable token identifying the submission form. Generated
	// once at creation and never changed afterwards.
	ShareID string `gorm:"uniqueIndex;not null"`

	FormSettings   datatypes.JSON `gorm:"type:jsonb"`
	WidgetSettings datatypes.JSON `gorm:"type:jsonb"`
	Active         bool           `gorm:"not null;default:true"`
	Stats          datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Owner        User          `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Testimonials []Testimonial `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		return fmt.Errorf("%w: project name is required", ErrValidation)
	}

	if len([]rune(p.Name)) > 100 {
		return fmt.Errorf("%w: project name cannot be more than 100 characters", ErrValidation)
	}

	if len([]rune(p.Description)) > 500 {
		return fmt.Errorf("%w: description cannot be more than 500 characters", ErrValidation)
	}

	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ShareID == "" {
		shareID, err := utils.GenerateShareID()
		if err != nil {
			return err
		}
		p.ShareID = shareID
	}

	if len(p.FormSettings) == 0 {
		raw, err := json.Marshal(types.DefaultFormSettings())
		if err != nil {
			return err
		}
		p.FormSettings = raw
	}

	if len(p.WidgetSettings) == 0 {
		raw, err := json.Marshal(types.DefaultWidgetSettings())
		if err != nil {
			return err
		}
		p.WidgetSettings = raw
	}

	if len(p.Stats) == 0 {
		raw, err := json.Marshal(types.ProjectStats{})
		if err != nil {
			return err
		}
		p.Stats = raw
	}

	return nil
}

func (p *Project) GetFormSettings() types.FormSettings {
	settings := types.DefaultFormSettings()

	if len(p.FormSettings) > 0 {
		if err := json.Unmarshal(p.FormSettings, &settings); err != nil {
			return types.DefaultFormSettings()
		}
	}

	return settings
}

func (p *Project) SetFormSettings(settings types.FormSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	p.FormSettings = raw
	return nil
}

func (p *Project) GetWidgetSettings() types.WidgetSettings {
	settings := types.DefaultWidgetSettings()

	if len(p.WidgetSettings) > 0 {
		if err := json.Unmarshal(p.WidgetSettings, &settings); err != nil {
			return types.DefaultWidgetSettings()
		}
	}

	return settings
}

func (p *Project) SetWidgetSettings(settings types.WidgetSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	p.WidgetSettings = raw
	return nil
}

func (p *Project) GetStats() types.ProjectStats {
	var stats types.ProjectStats

	if len(p.Stats) > 0 {
		if err := json.Unmarshal(p.Stats, &stats); err != nil {
			return types.ProjectStats{}
		}
	}

	return stats
}

func (p *Project) SetStats(stats types.ProjectStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	p.Stats = raw
	return nil
}
