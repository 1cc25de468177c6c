package types

// Settings and stats documents stored as jsonb on users and projects.

type NotificationSettings struct {
	EmailOnNewTestimonial bool `json:"emailOnNewTestimonial"`
	EmailOnApproval       bool `json:"emailOnApproval"`
	EmailWeeklyReport     bool `json:"emailWeeklyReport"`
	EmailMonthlyReport    bool `json:"emailMonthlyReport"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailOnNewTestimonial: true,
		EmailOnApproval:       false,
		EmailWeeklyReport:     true,
		EmailMonthlyReport:    false,
	}
}

type CustomQuestion struct {
	Question string `json:"question"`
	Required bool   `json:"required"`
}

type FormSettings struct {
	CollectEmail    bool             `json:"collectEmail"`
	CollectCompany  bool             `json:"collectCompany"`
	CollectPosition bool             `json:"collectPosition"`
	AllowVideo      bool             `json:"allowVideo"`
	AllowPhoto      bool             `json:"allowPhoto"`
	RequireApproval bool             `json:"requireApproval"`
	CustomQuestions []CustomQuestion `json:"customQuestions"`
}

func DefaultFormSettings() FormSettings {
	return FormSettings{
		CollectEmail:    true,
		CollectCompany:  true,
		CollectPosition: true,
		AllowVideo:      true,
		AllowPhoto:      true,
		RequireApproval: true,
		CustomQuestions: []CustomQuestion{},
	}
}

type WidgetTheme struct {
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
}

type WidgetSettings struct {
	Layout          string      `json:"layout"` // "carousel", "grid", "cards", "list"
	Theme           WidgetTheme `json:"theme"`
	ShowRatings     bool        `json:"showRatings"`
	ShowPhotos      bool        `json:"showPhotos"`
	ShowCompany     bool        `json:"showCompany"`
	MaxTestimonials int         `json:"maxTestimonials"`
}

func DefaultWidgetSettings() WidgetSettings {
	return WidgetSettings{
		Layout: "carousel",
		Theme: WidgetTheme{
			PrimaryColor:    "#0ea5e9",
			BackgroundColor: "#ffffff",
			TextColor:       "#1f2937",
			FontFamily:      "Inter, sans-serif",
		},
		ShowRatings:     true,
		ShowPhotos:      true,
		ShowCompany:     true,
		MaxTestimonials: 10,
	}
}

// ProjectStats is denormalized onto the project row and recomputed from the
// testimonial table after every moderation action or deletion. The pending
// count is always derived as total - approved - rejected, never stored.
type ProjectStats struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
	ApprovedCount    int64 `json:"approvedCount"`
	RejectedCount    int64 `json:"rejectedCount"`
}
