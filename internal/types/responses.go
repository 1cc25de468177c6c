package types

import "time"

// AuthenticatedUser is what the auth middleware stores in the request context.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Plan    string `json:"plan"`
}

type ProjectResponse struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Website        string         `json:"website"`
	ShareID        string         `json:"share_id"`
	Active         bool           `json:"active"`
	FormSettings   FormSettings   `json:"form_settings"`
	WidgetSettings WidgetSettings `json:"widget_settings"`
	Stats          ProjectStats   `json:"stats"`
	CreatedAt      time.Time      `json:"created_at"`
}

type TestimonialResponse struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Company     string     `json:"company,omitempty"`
	Position    string     `json:"position,omitempty"`
	Rating      int        `json:"rating"`
	Testimonial string     `json:"testimonial"`
	Photo       string     `json:"photo,omitempty"`
	Video       string     `json:"video,omitempty"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
